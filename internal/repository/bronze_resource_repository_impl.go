package repository

import (
	"context"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"
	domainRepo "github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/repository"

	"gorm.io/gorm"
)

type bronzeResourceRepository struct{}

func NewBronzeResourceRepository() domainRepo.BronzeResourceRepository {
	return &bronzeResourceRepository{}
}

func (r *bronzeResourceRepository) CreateBatch(ctx context.Context, db *gorm.DB, resources []entity.BronzeResource) error {
	if len(resources) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&resources).Error
}

func (r *bronzeResourceRepository) FindUnprocessedByType(ctx context.Context, db *gorm.DB, resourceType string, limit int) ([]entity.BronzeResource, error) {
	var resources []entity.BronzeResource
	err := db.WithContext(ctx).
		Where("resource_type = ? AND processed_at IS NULL", resourceType).
		Order("received_at").
		Limit(limit).
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *bronzeResourceRepository) MarkProcessed(ctx context.Context, db *gorm.DB, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Model(&entity.BronzeResource{}).
		Where("id IN ?", ids).
		Update("processed_at", gorm.Expr("NOW()")).Error
}

func (r *bronzeResourceRepository) CountByBundle(ctx context.Context, db *gorm.DB, bundleID string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.BronzeResource{}).
		Where("bundle_id = ?", bundleID).
		Count(&count).Error
	return count, err
}
