package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/config"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/converter"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/delivery/dto"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/fhir"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/repository"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/infrastructure/objectstore"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrInvalidBundle = errors.New("invalid FHIR bundle")
	ErrEmptyBundle   = errors.New("bundle contains no entries")
)

type IngestUsecase interface {
	IngestBundle(ctx context.Context, raw []byte, triggeredBy string) (*dto.IngestResponse, error)
	IngestSynthetic(ctx context.Context, batchSize int, triggeredBy string) (*dto.IngestResponse, error)
}

type ingestUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	cfg          config.PipelineConfig
	bronzeRepo   repository.BronzeResourceRepository
	runRepo      repository.PipelineRunRepository
	auditService service.AuditService
	generator    service.GeneratorService
	bronzeStore  objectstore.BronzeStore
}

// NewIngestUsecase wires the bronze ingestion path. bronzeStore may be nil
// when the object store is disabled; database persistence is authoritative.
func NewIngestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.PipelineConfig,
	bronzeRepo repository.BronzeResourceRepository,
	runRepo repository.PipelineRunRepository,
	auditService service.AuditService,
	generator service.GeneratorService,
	bronzeStore objectstore.BronzeStore,
) IngestUsecase {
	return &ingestUsecase{
		db:           db,
		log:          log,
		cfg:          cfg,
		bronzeRepo:   bronzeRepo,
		runRepo:      runRepo,
		auditService: auditService,
		generator:    generator,
		bronzeStore:  bronzeStore,
	}
}

// IngestBundle lands every entry of a collection bundle in the bronze layer,
// untouched, and archives the raw document in the bronze zone of the lake.
func (u *ingestUsecase) IngestBundle(ctx context.Context, raw []byte, triggeredBy string) (*dto.IngestResponse, error) {
	return u.ingest(ctx, raw, triggeredBy, entity.AuditActionBundleIngest)
}

// IngestSynthetic generates a synthetic batch and pushes it through the same
// ingestion path as an external bundle.
func (u *ingestUsecase) IngestSynthetic(ctx context.Context, batchSize int, triggeredBy string) (*dto.IngestResponse, error) {
	bundle := u.generator.GenerateBatch(batchSize)
	raw, err := json.Marshal(bundle)
	if err != nil {
		u.log.Warnf("Failed to marshal synthetic bundle: %+v", err)
		return nil, err
	}
	return u.ingest(ctx, raw, triggeredBy, entity.AuditActionSyntheticIngest)
}

func (u *ingestUsecase) ingest(ctx context.Context, raw []byte, triggeredBy string, auditAction string) (*dto.IngestResponse, error) {
	bundle, err := fhir.ParseBundle(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBundle, err)
	}
	if len(bundle.Entry) == 0 {
		return nil, ErrEmptyBundle
	}

	bundleID := uuid.New().String()

	run := &entity.PipelineRun{
		ID:          uuid.New(),
		Stage:       entity.PipelineStageIngest,
		Status:      entity.RunStatusRunning,
		TriggeredBy: triggeredBy,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.runRepo.Create(ctx, tx, run); err != nil {
		u.log.Warnf("Failed to create pipeline run: %+v", err)
		return nil, err
	}

	resources := make([]entity.BronzeResource, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		header, err := entry.Header()
		if err != nil {
			// Entries without a readable envelope are still landed raw.
			u.log.Warnf("Failed to read resource header in bundle %s: %+v", bundleID, err)
		}
		resources = append(resources, entity.BronzeResource{
			ID:           uuid.New(),
			BundleID:     bundleID,
			ResourceType: header.ResourceType,
			ResourceID:   header.ID,
			Payload:      datatypes.JSON(entry.Resource),
			Source:       u.cfg.DataSource,
		})
	}

	if err := u.bronzeRepo.CreateBatch(ctx, tx, resources); err != nil {
		u.log.Warnf("Failed to store bronze resources: %+v", err)
		return nil, err
	}

	now := time.Now().UTC()
	run.Status = entity.RunStatusSucceeded
	run.RecordsIn = len(bundle.Entry)
	run.RecordsValid = len(resources)
	run.FinishedAt = &now
	if err := u.runRepo.Update(ctx, tx, run); err != nil {
		u.log.Warnf("Failed to update pipeline run: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogPipelineAction(ctx, tx, triggeredBy, auditAction, run.ID.String(), entity.JSON{
		"bundle_id": bundleID,
		"resources": len(resources),
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.archiveRawBundle(ctx, raw)

	u.log.Infof("Ingested bundle %s: %d resources landed in bronze", bundleID, len(resources))

	return &dto.IngestResponse{
		Run:      converter.PipelineRunToResponse(run),
		BundleID: bundleID,
	}, nil
}

// archiveRawBundle mirrors the raw document into the bronze zone. Failures
// are logged but never fail the ingest: the database copy is authoritative.
func (u *ingestUsecase) archiveRawBundle(ctx context.Context, raw []byte) {
	if u.bronzeStore == nil {
		return
	}
	key := fmt.Sprintf("bronze/fhir_raw_%s.json", time.Now().UTC().Format("20060102_150405"))
	if err := u.bronzeStore.PutRawBundle(ctx, key, raw); err != nil {
		u.log.Warnf("Failed to archive raw bundle: %+v", err)
		return
	}
	u.log.Infof("Archived raw bundle to %s", key)
}
