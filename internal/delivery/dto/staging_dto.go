package dto

import "time"

type StagedPatientResponse struct {
	PatientID           string    `json:"patient_id"`
	PatientName         string    `json:"patient_name"`
	DateOfBirth         string    `json:"date_of_birth"`
	Gender              string    `json:"gender"`
	GeographicRegion    string    `json:"geographic_region"`
	MedicalRecordNumber string    `json:"medical_record_number"`
	IngestionTimestamp  time.Time `json:"ingestion_timestamp"`
	DataSource          string    `json:"data_source"`
	ComplianceFlag      string    `json:"compliance_flag"`
	AgeYears            int       `json:"age_years"`
	AgeGroup            string    `json:"age_group"`
}

type StagedPatientListResponse struct {
	Patients       []*StagedPatientResponse `json:"patients"`
	Total          int                      `json:"total"`
	ProcessingDate string                   `json:"processing_date"`
}
