package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BronzeResource is a raw FHIR resource landed in the bronze layer.
// The payload is kept verbatim as JSONB; nothing is parsed or cleaned here.
type BronzeResource struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	BundleID     string         `gorm:"type:varchar(64);index;not null" json:"bundle_id"`
	ResourceType string         `gorm:"type:varchar(64);index;not null" json:"resource_type"`
	ResourceID   string         `gorm:"type:varchar(64);index" json:"resource_id"`
	Payload      datatypes.JSON `gorm:"type:jsonb;not null" json:"payload"`
	Source       string         `gorm:"type:varchar(100);not null" json:"source"`
	ReceivedAt   time.Time      `gorm:"autoCreateTime;index" json:"received_at"`
	ProcessedAt  *time.Time     `gorm:"index" json:"processed_at,omitempty"`
}

func (BronzeResource) TableName() string {
	return "bronze_resources"
}

// Resource types this pipeline cares about
const (
	ResourceTypePatient     = "Patient"
	ResourceTypeObservation = "Observation"
)
