package service

import (
	"time"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/fhir"

	"github.com/sirupsen/logrus"
)

// Quality check identifiers, reported per dropped record
const (
	CheckMissingPatientID = "missing_patient_id"
	CheckInvalidBirthDate = "invalid_birth_date"
	CheckInvalidGender    = "invalid_gender"
)

const minBirthYear = 1900

// QualityReport summarizes one validation pass over a transform batch.
type QualityReport struct {
	RecordsIn      int            `json:"records_in"`
	RecordsValid   int            `json:"records_valid"`
	RecordsDropped int            `json:"records_dropped"`
	DroppedByCheck map[string]int `json:"dropped_by_check"`
	GeneratedAt    time.Time      `json:"generated_at"`
}

// QualityService runs the data-quality checks applied between bronze and
// silver. Records failing any check are dropped, not errored.
type QualityService interface {
	CheckPatient(patient *fhir.Patient, birthDate *time.Time, now time.Time) []string
	NewReport(now time.Time) *QualityReport
	RecordVerdict(report *QualityReport, violations []string)
}

type qualityService struct {
	log *logrus.Logger
}

func NewQualityService(log *logrus.Logger) QualityService {
	return &qualityService{log: log}
}

// CheckPatient returns the list of failed checks for one patient resource.
// birthDate is the already-parsed birth date, nil when absent or unparseable.
func (s *qualityService) CheckPatient(patient *fhir.Patient, birthDate *time.Time, now time.Time) []string {
	var violations []string

	if patient.ID == "" {
		violations = append(violations, CheckMissingPatientID)
	}

	if birthDate == nil {
		violations = append(violations, CheckInvalidBirthDate)
	} else {
		year := birthDate.Year()
		if year < minBirthYear || year > now.Year() {
			violations = append(violations, CheckInvalidBirthDate)
		}
	}

	if !isValidGender(patient.Gender) {
		violations = append(violations, CheckInvalidGender)
	}

	return violations
}

func (s *qualityService) NewReport(now time.Time) *QualityReport {
	return &QualityReport{
		DroppedByCheck: make(map[string]int),
		GeneratedAt:    now,
	}
}

// RecordVerdict folds one record's check result into the report.
func (s *qualityService) RecordVerdict(report *QualityReport, violations []string) {
	report.RecordsIn++
	if len(violations) == 0 {
		report.RecordsValid++
		return
	}
	report.RecordsDropped++
	for _, v := range violations {
		report.DroppedByCheck[v]++
	}
}

func isValidGender(gender string) bool {
	for _, g := range entity.ValidGenders {
		if gender == g {
			return true
		}
	}
	return false
}
