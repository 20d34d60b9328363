package entity

import "time"

// StagedPatient is one row of the patient staging view. It is never stored:
// the view is re-derived from silver_patients on every evaluation.
type StagedPatient struct {
	PatientID           string    `json:"patient_id"`
	PatientName         string    `json:"patient_name"`
	DateOfBirth         time.Time `json:"date_of_birth"`
	Gender              string    `json:"gender"`
	GeographicRegion    string    `json:"geographic_region"`
	MedicalRecordNumber string    `json:"medical_record_number"`
	IngestionTimestamp  time.Time `json:"ingestion_timestamp"`
	DataSource          string    `json:"data_source"`
	ComplianceFlag      string    `json:"compliance_flag"`
	AgeYears            int       `json:"age_years"`
	AgeGroup            string    `json:"age_group"`
}

// Age group buckets
const (
	AgeGroupPediatric = "Pediatric"
	AgeGroupAdult     = "Adult"
	AgeGroupSenior    = "Senior"
)

// AgeYearsAt computes whole years of age as floor(days / 365.25), where days
// is the civil-date difference between birth and the processing date.
func AgeYearsAt(birth, processing time.Time) int {
	days := int(civilDate(processing).Sub(civilDate(birth)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return int(float64(days) / 365.25)
}

// AgeGroupFor buckets whole years into Pediatric (<18), Adult (18-64)
// and Senior (65+).
func AgeGroupFor(ageYears int) string {
	switch {
	case ageYears < 18:
		return AgeGroupPediatric
	case ageYears < 65:
		return AgeGroupAdult
	default:
		return AgeGroupSenior
	}
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
