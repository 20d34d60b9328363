package converter

import (
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/delivery/dto"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/service"
)

// PipelineRunToResponse converts a PipelineRun entity to its DTO
func PipelineRunToResponse(run *entity.PipelineRun) *dto.PipelineRunResponse {
	if run == nil {
		return nil
	}

	return &dto.PipelineRunResponse{
		ID:             run.ID.String(),
		Stage:          run.Stage,
		Status:         run.Status,
		TriggeredBy:    run.TriggeredBy,
		RecordsIn:      run.RecordsIn,
		RecordsValid:   run.RecordsValid,
		RecordsDropped: run.RecordsDropped,
		Error:          run.Error,
		StartedAt:      run.StartedAt,
		FinishedAt:     run.FinishedAt,
	}
}

func PipelineRunsToResponses(runs []entity.PipelineRun) []*dto.PipelineRunResponse {
	responses := make([]*dto.PipelineRunResponse, 0, len(runs))
	for i := range runs {
		responses = append(responses, PipelineRunToResponse(&runs[i]))
	}
	return responses
}

// QualityReportToResponse converts a QualityReport to its DTO
func QualityReportToResponse(report *service.QualityReport) *dto.QualityReportResponse {
	if report == nil {
		return nil
	}

	return &dto.QualityReportResponse{
		RecordsIn:      report.RecordsIn,
		RecordsValid:   report.RecordsValid,
		RecordsDropped: report.RecordsDropped,
		DroppedByCheck: report.DroppedByCheck,
		GeneratedAt:    report.GeneratedAt,
	}
}
