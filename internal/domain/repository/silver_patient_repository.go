package repository

import (
	"context"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"

	"gorm.io/gorm"
)

type SilverPatientRepository interface {
	Upsert(ctx context.Context, db *gorm.DB, patient *entity.SilverPatient) error
	FindAll(ctx context.Context, db *gorm.DB, offset, limit int) ([]entity.SilverPatient, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID string) (*entity.SilverPatient, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
