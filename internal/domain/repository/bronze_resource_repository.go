package repository

import (
	"context"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"

	"gorm.io/gorm"
)

type BronzeResourceRepository interface {
	CreateBatch(ctx context.Context, db *gorm.DB, resources []entity.BronzeResource) error
	FindUnprocessedByType(ctx context.Context, db *gorm.DB, resourceType string, limit int) ([]entity.BronzeResource, error)
	MarkProcessed(ctx context.Context, db *gorm.DB, ids []string) error
	CountByBundle(ctx context.Context, db *gorm.DB, bundleID string) (int64, error)
}
