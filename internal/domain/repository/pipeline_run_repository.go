package repository

import (
	"context"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PipelineRunRepository interface {
	Create(ctx context.Context, db *gorm.DB, run *entity.PipelineRun) error
	Update(ctx context.Context, db *gorm.DB, run *entity.PipelineRun) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.PipelineRun, error)
	FindAll(ctx context.Context, db *gorm.DB, offset, limit int) ([]entity.PipelineRun, error)
	FindLatestByStage(ctx context.Context, db *gorm.DB, stage string) (*entity.PipelineRun, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
