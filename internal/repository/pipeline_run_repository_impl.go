package repository

import (
	"context"
	"errors"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"
	domainRepo "github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pipelineRunRepository struct{}

func NewPipelineRunRepository() domainRepo.PipelineRunRepository {
	return &pipelineRunRepository{}
}

func (r *pipelineRunRepository) Create(ctx context.Context, db *gorm.DB, run *entity.PipelineRun) error {
	return db.WithContext(ctx).Create(run).Error
}

func (r *pipelineRunRepository) Update(ctx context.Context, db *gorm.DB, run *entity.PipelineRun) error {
	return db.WithContext(ctx).Save(run).Error
}

func (r *pipelineRunRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.PipelineRun, error) {
	var run entity.PipelineRun
	err := db.WithContext(ctx).Where("id = ?", id).First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

func (r *pipelineRunRepository) FindAll(ctx context.Context, db *gorm.DB, offset, limit int) ([]entity.PipelineRun, error) {
	var runs []entity.PipelineRun
	query := db.WithContext(ctx).Order("started_at DESC")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *pipelineRunRepository) FindLatestByStage(ctx context.Context, db *gorm.DB, stage string) (*entity.PipelineRun, error) {
	var run entity.PipelineRun
	err := db.WithContext(ctx).
		Where("stage = ?", stage).
		Order("started_at DESC").
		First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

func (r *pipelineRunRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.PipelineRun{}).Count(&count).Error
	return count, err
}
