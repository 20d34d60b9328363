package entity

import (
	"time"

	"github.com/google/uuid"
)

// PipelineRun records one execution of a pipeline stage.
type PipelineRun struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Stage          string     `gorm:"type:varchar(20);index;not null" json:"stage"`
	Status         string     `gorm:"type:varchar(20);index;not null" json:"status"`
	TriggeredBy    string     `gorm:"type:varchar(100)" json:"triggered_by"`
	RecordsIn      int        `json:"records_in"`
	RecordsValid   int        `json:"records_valid"`
	RecordsDropped int        `json:"records_dropped"`
	Error          string     `gorm:"type:text" json:"error,omitempty"`
	StartedAt      time.Time  `gorm:"autoCreateTime;index" json:"started_at"`
	FinishedAt     *time.Time `json:"finished_at,omitempty"`
}

func (PipelineRun) TableName() string {
	return "pipeline_runs"
}

// Pipeline stages
const (
	PipelineStageIngest    = "ingest"
	PipelineStageTransform = "transform"
)

// Run states
const (
	RunStatusRunning   = "running"
	RunStatusSucceeded = "succeeded"
	RunStatusFailed    = "failed"
)

// Trigger sources
const (
	TriggerHTTP  = "http"
	TriggerKafka = "kafka"
)
