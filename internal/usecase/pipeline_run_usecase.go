package usecase

import (
	"context"
	"errors"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/converter"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/delivery/dto"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPipelineRunNotFound = errors.New("pipeline run not found")

type PipelineRunUsecase interface {
	GetAllRuns(ctx context.Context, page, limit int) (*dto.PipelineRunListResponse, error)
	GetRun(ctx context.Context, id uuid.UUID) (*dto.PipelineRunResponse, error)
}

type pipelineRunUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	runRepo repository.PipelineRunRepository
}

func NewPipelineRunUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	runRepo repository.PipelineRunRepository,
) PipelineRunUsecase {
	return &pipelineRunUsecase{
		db:      db,
		log:     log,
		runRepo: runRepo,
	}
}

func (u *pipelineRunUsecase) GetAllRuns(ctx context.Context, page, limit int) (*dto.PipelineRunListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	runs, err := u.runRepo.FindAll(ctx, u.db, (page-1)*limit, limit)
	if err != nil {
		u.log.Warnf("Failed to find pipeline runs: %+v", err)
		return nil, err
	}

	total, err := u.runRepo.Count(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count pipeline runs: %+v", err)
		return nil, err
	}

	return &dto.PipelineRunListResponse{
		Runs:  converter.PipelineRunsToResponses(runs),
		Total: total,
	}, nil
}

func (u *pipelineRunUsecase) GetRun(ctx context.Context, id uuid.UUID) (*dto.PipelineRunResponse, error) {
	run, err := u.runRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find pipeline run: %+v", err)
		return nil, err
	}
	if run == nil {
		return nil, ErrPipelineRunNotFound
	}

	return converter.PipelineRunToResponse(run), nil
}
