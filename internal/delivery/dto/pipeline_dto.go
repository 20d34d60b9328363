package dto

import "time"

type IngestSyntheticRequest struct {
	BatchSize int `json:"batch_size" validate:"required,gte=1,lte=1000"`
}

type PipelineRunResponse struct {
	ID             string     `json:"id"`
	Stage          string     `json:"stage"`
	Status         string     `json:"status"`
	TriggeredBy    string     `json:"triggered_by"`
	RecordsIn      int        `json:"records_in"`
	RecordsValid   int        `json:"records_valid"`
	RecordsDropped int        `json:"records_dropped"`
	Error          string     `json:"error,omitempty"`
	StartedAt      time.Time  `json:"started_at"`
	FinishedAt     *time.Time `json:"finished_at,omitempty"`
}

type PipelineRunListResponse struct {
	Runs  []*PipelineRunResponse `json:"runs"`
	Total int64                  `json:"total"`
}

type QualityReportResponse struct {
	RecordsIn      int            `json:"records_in"`
	RecordsValid   int            `json:"records_valid"`
	RecordsDropped int            `json:"records_dropped"`
	DroppedByCheck map[string]int `json:"dropped_by_check"`
	GeneratedAt    time.Time      `json:"generated_at"`
}

type TransformResponse struct {
	Run           *PipelineRunResponse   `json:"run"`
	QualityReport *QualityReportResponse `json:"quality_report"`
}

type IngestResponse struct {
	Run      *PipelineRunResponse `json:"run"`
	BundleID string               `json:"bundle_id"`
}
