package dto

import "time"

type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	Actor     string                 `json:"actor,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []*AuditLogResponse `json:"logs"`
	Total int                 `json:"total"`
}
