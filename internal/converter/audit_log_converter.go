package converter

import (
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/delivery/dto"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"
)

// AuditLogToResponse converts an AuditLog entity to its DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	return &dto.AuditLogResponse{
		ID:        log.ID,
		Actor:     log.Actor,
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
}

func AuditLogsToResponses(logs []entity.AuditLog) []*dto.AuditLogResponse {
	responses := make([]*dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, AuditLogToResponse(&logs[i]))
	}
	return responses
}
