package service

import (
	"context"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	LogPipelineAction(ctx context.Context, tx *gorm.DB, actor string, action string, runID string, metadata entity.JSON) error
	LogAuthAction(ctx context.Context, tx *gorm.DB, actor string, action string, tokenID string) error
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogPipelineAction records a pipeline stage execution against its run id.
func (s *auditService) LogPipelineAction(ctx context.Context, tx *gorm.DB, actor string, action string, runID string, metadata entity.JSON) error {
	if metadata == nil {
		metadata = entity.JSON{}
	}
	metadata["run_id"] = runID

	auditLog := &entity.AuditLog{
		Actor:    actor,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

// LogAuthAction records token issuance and revocation.
func (s *auditService) LogAuthAction(ctx context.Context, tx *gorm.DB, actor string, action string, tokenID string) error {
	auditLog := &entity.AuditLog{
		Actor:  actor,
		Action: action,
		Metadata: entity.JSON{
			"token_id": tokenID,
		},
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
