package entity

import (
	"time"
)

// SilverPatient is a masked, validated patient row in the silver layer.
// PatientID and BirthDate stay nullable on purpose: the staging view owns the
// null filtering, the silver table stores what the transform produced.
type SilverPatient struct {
	ID                 int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID          *string    `gorm:"type:varchar(64);uniqueIndex" json:"patient_id,omitempty"`
	NameInitial        string     `gorm:"type:varchar(100)" json:"name_initial"`
	BirthDate          *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Gender             string     `gorm:"type:varchar(10)" json:"gender"`
	ZipRegion          string     `gorm:"type:char(3)" json:"zip_region"`
	MRNMasked          string     `gorm:"type:varchar(20)" json:"mrn_masked"`
	SSNMasked          *string    `gorm:"type:varchar(11)" json:"ssn_masked,omitempty"`
	IngestionTimestamp time.Time  `gorm:"not null" json:"ingestion_timestamp"`
	DataSource         string     `gorm:"type:varchar(100);not null" json:"data_source"`
	ComplianceFlag     string     `gorm:"type:varchar(20);index;not null" json:"compliance_flag"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SilverPatient) TableName() string {
	return "silver_patients"
}

// ComplianceFlagMasked marks a row that passed the HIPAA masking transform.
// The staging view only admits rows carrying exactly this value.
const ComplianceFlagMasked = "HIPAA-MASKED"

// Gender codes accepted by the quality checks (FHIR administrative-gender)
var ValidGenders = []string{"male", "female", "other", "unknown"}
