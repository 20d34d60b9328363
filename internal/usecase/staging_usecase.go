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
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrStagedPatientNotFound = errors.New("staged patient not found")

type StagingUsecase interface {
	QueryPatients(ctx context.Context, page, limit int) (*dto.StagedPatientListResponse, error)
	GetPatient(ctx context.Context, patientID string) (*dto.StagedPatientResponse, error)
}

type stagingUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	cfg         config.PipelineConfig
	redisClient *redis.Client
	silverRepo  repository.SilverPatientRepository
}

func NewStagingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.PipelineConfig,
	redisClient *redis.Client,
	silverRepo repository.SilverPatientRepository,
) StagingUsecase {
	return &stagingUsecase{
		db:          db,
		log:         log,
		cfg:         cfg,
		redisClient: redisClient,
		silverRepo:  silverRepo,
	}
}

// QueryPatients evaluates the staging view over the silver layer at the
// current processing date. The view is never persisted; a short-lived Redis
// cache keyed by processing date keeps repeated reads cheap without changing
// the result within a day.
func (u *stagingUsecase) QueryPatients(ctx context.Context, page, limit int) (*dto.StagedPatientListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 500 {
		limit = 100
	}

	processingDate := time.Now().UTC()
	cacheKey := fmt.Sprintf("staging:patients:%s:%d:%d", processingDate.Format("2006-01-02"), page, limit)

	if cached, err := u.redisClient.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.StagedPatientListResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		u.log.Warnf("Failed to read staging cache: %+v", err)
	}

	offset := (page - 1) * limit
	silverRows, err := u.silverRepo.FindAll(ctx, u.db, offset, limit)
	if err != nil {
		u.log.Warnf("Failed to load silver patients: %+v", err)
		return nil, err
	}

	staged := converter.SilverPatientsToStaged(silverRows, processingDate)

	resp := &dto.StagedPatientListResponse{
		Patients:       converter.StagedPatientsToResponses(staged),
		Total:          len(staged),
		ProcessingDate: processingDate.Format("2006-01-02"),
	}

	u.cachePage(ctx, cacheKey, resp)

	return resp, nil
}

// GetPatient evaluates the view for a single patient id. Rows the view
// filters out are indistinguishable from absent rows.
func (u *stagingUsecase) GetPatient(ctx context.Context, patientID string) (*dto.StagedPatientResponse, error) {
	silver, err := u.silverRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find silver patient: %+v", err)
		return nil, err
	}
	if silver == nil {
		return nil, ErrStagedPatientNotFound
	}

	staged, ok := converter.SilverPatientToStaged(silver, time.Now().UTC())
	if !ok {
		return nil, ErrStagedPatientNotFound
	}

	return converter.StagedPatientToResponse(staged), nil
}

func (u *stagingUsecase) cachePage(ctx context.Context, key string, resp *dto.StagedPatientListResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := u.redisClient.Set(ctx, key, data, u.cfg.StagingCacheTTL).Err(); err != nil {
		u.log.Warnf("Failed to write staging cache: %+v", err)
	}
}
