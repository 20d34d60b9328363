package repository

import (
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(tx *gorm.DB, log *entity.AuditLog) error
	FindAll(db *gorm.DB) ([]entity.AuditLog, error)
	FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error)
}
