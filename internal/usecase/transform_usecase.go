package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/config"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/converter"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/delivery/dto"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/fhir"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/repository"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNoQualityReport = errors.New("no quality report available")

// Redis key for the most recent transform quality report
const qualityReportCacheKey = "pipeline:quality_report:latest"

type TransformUsecase interface {
	Run(ctx context.Context, triggeredBy string) (*dto.TransformResponse, error)
	GetLatestQualityReport(ctx context.Context) (*dto.QualityReportResponse, error)
}

type transformUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	cfg          config.PipelineConfig
	redisClient  *redis.Client
	bronzeRepo   repository.BronzeResourceRepository
	silverRepo   repository.SilverPatientRepository
	runRepo      repository.PipelineRunRepository
	masking      service.MaskingService
	quality      service.QualityService
	auditService service.AuditService
}

func NewTransformUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.PipelineConfig,
	redisClient *redis.Client,
	bronzeRepo repository.BronzeResourceRepository,
	silverRepo repository.SilverPatientRepository,
	runRepo repository.PipelineRunRepository,
	masking service.MaskingService,
	quality service.QualityService,
	auditService service.AuditService,
) TransformUsecase {
	return &transformUsecase{
		db:           db,
		log:          log,
		cfg:          cfg,
		redisClient:  redisClient,
		bronzeRepo:   bronzeRepo,
		silverRepo:   silverRepo,
		runRepo:      runRepo,
		masking:      masking,
		quality:      quality,
		auditService: auditService,
	}
}

// Run processes unprocessed bronze Patient resources into silver_patients:
// PII masking, quality validation, lineage metadata, upsert by patient id.
// Records failing a quality check are dropped and counted, never errored.
func (u *transformUsecase) Run(ctx context.Context, triggeredBy string) (*dto.TransformResponse, error) {
	now := time.Now().UTC()
	report := u.quality.NewReport(now)

	run := &entity.PipelineRun{
		ID:          uuid.New(),
		Stage:       entity.PipelineStageTransform,
		Status:      entity.RunStatusRunning,
		TriggeredBy: triggeredBy,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.runRepo.Create(ctx, tx, run); err != nil {
		u.log.Warnf("Failed to create pipeline run: %+v", err)
		return nil, err
	}

	bronzeRows, err := u.bronzeRepo.FindUnprocessedByType(ctx, tx, entity.ResourceTypePatient, u.cfg.BatchSize)
	if err != nil {
		u.log.Warnf("Failed to load unprocessed bronze resources: %+v", err)
		return nil, err
	}

	processedIDs := make([]string, 0, len(bronzeRows))
	for i := range bronzeRows {
		row := &bronzeRows[i]
		processedIDs = append(processedIDs, row.ID.String())

		var patient fhir.Patient
		if err := json.Unmarshal(row.Payload, &patient); err != nil {
			u.log.Warnf("Failed to decode bronze patient %s: %+v", row.ID, err)
			u.quality.RecordVerdict(report, []string{service.CheckMissingPatientID})
			continue
		}

		birthDate := parseBirthDate(patient.BirthDate)
		violations := u.quality.CheckPatient(&patient, birthDate, now)
		u.quality.RecordVerdict(report, violations)
		if len(violations) > 0 {
			continue
		}

		silver := u.toSilver(&patient, birthDate, now)
		if err := u.silverRepo.Upsert(ctx, tx, silver); err != nil {
			u.log.Warnf("Failed to upsert silver patient %s: %+v", patient.ID, err)
			return nil, err
		}
	}

	if err := u.bronzeRepo.MarkProcessed(ctx, tx, processedIDs); err != nil {
		u.log.Warnf("Failed to mark bronze resources processed: %+v", err)
		return nil, err
	}

	finished := time.Now().UTC()
	run.Status = entity.RunStatusSucceeded
	run.RecordsIn = report.RecordsIn
	run.RecordsValid = report.RecordsValid
	run.RecordsDropped = report.RecordsDropped
	run.FinishedAt = &finished
	if err := u.runRepo.Update(ctx, tx, run); err != nil {
		u.log.Warnf("Failed to update pipeline run: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogPipelineAction(ctx, tx, triggeredBy, entity.AuditActionSilverTransform, run.ID.String(), entity.JSON{
		"records_in":      report.RecordsIn,
		"records_valid":   report.RecordsValid,
		"records_dropped": report.RecordsDropped,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.cacheReport(ctx, report)

	if report.RecordsDropped > 0 {
		u.log.Warnf("Data quality issue: %d records failed validation", report.RecordsDropped)
	}
	u.log.Infof("Transform complete: %d valid, %d dropped", report.RecordsValid, report.RecordsDropped)

	return &dto.TransformResponse{
		Run:           converter.PipelineRunToResponse(run),
		QualityReport: converter.QualityReportToResponse(report),
	}, nil
}

// GetLatestQualityReport returns the cached report from the most recent
// transform, falling back to the counts stored on the latest run row.
func (u *transformUsecase) GetLatestQualityReport(ctx context.Context) (*dto.QualityReportResponse, error) {
	cached, err := u.redisClient.Get(ctx, qualityReportCacheKey).Bytes()
	if err == nil {
		var report service.QualityReport
		if err := json.Unmarshal(cached, &report); err == nil {
			return converter.QualityReportToResponse(&report), nil
		}
		u.log.Warnf("Failed to decode cached quality report: %+v", err)
	} else if !errors.Is(err, redis.Nil) {
		u.log.Warnf("Failed to read cached quality report: %+v", err)
	}

	run, err := u.runRepo.FindLatestByStage(ctx, u.db, entity.PipelineStageTransform)
	if err != nil {
		u.log.Warnf("Failed to find latest transform run: %+v", err)
		return nil, err
	}
	if run == nil {
		return nil, ErrNoQualityReport
	}

	return &dto.QualityReportResponse{
		RecordsIn:      run.RecordsIn,
		RecordsValid:   run.RecordsValid,
		RecordsDropped: run.RecordsDropped,
		DroppedByCheck: map[string]int{},
		GeneratedAt:    run.StartedAt,
	}, nil
}

func (u *transformUsecase) toSilver(patient *fhir.Patient, birthDate *time.Time, now time.Time) *entity.SilverPatient {
	given, family := patient.OfficialName()

	var patientID *string
	if patient.ID != "" {
		id := patient.ID
		patientID = &id
	}

	var ssnMasked *string
	if patient.SSN != "" {
		masked := u.masking.MaskSSN(patient.SSN)
		ssnMasked = &masked
	}

	return &entity.SilverPatient{
		PatientID:          patientID,
		NameInitial:        u.masking.MaskName(given, family),
		BirthDate:          birthDate,
		Gender:             patient.Gender,
		ZipRegion:          u.masking.ZipRegion(patient.PostalCode()),
		MRNMasked:          u.masking.MaskMRN(patient.MRN()),
		SSNMasked:          ssnMasked,
		IngestionTimestamp: now,
		DataSource:         u.cfg.DataSource,
		ComplianceFlag:     entity.ComplianceFlagMasked,
	}
}

func (u *transformUsecase) cacheReport(ctx context.Context, report *service.QualityReport) {
	data, err := json.Marshal(report)
	if err != nil {
		u.log.Warnf("Failed to marshal quality report: %+v", err)
		return
	}
	if err := u.redisClient.Set(ctx, qualityReportCacheKey, data, 24*time.Hour).Err(); err != nil {
		u.log.Warnf("Failed to cache quality report: %+v", err)
	}
}

func parseBirthDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return nil
	}
	return &parsed
}
