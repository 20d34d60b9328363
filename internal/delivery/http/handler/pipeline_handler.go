package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/delivery/dto"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/delivery/http/middleware"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/usecase"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/pkg/response"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Bundles above this size are rejected before parsing
const maxBundleBytes = 10 << 20

type PipelineHandler struct {
	ingestUsecase    usecase.IngestUsecase
	transformUsecase usecase.TransformUsecase
	runUsecase       usecase.PipelineRunUsecase
	validator        *validator.CustomValidator
}

func NewPipelineHandler(
	ingestUsecase usecase.IngestUsecase,
	transformUsecase usecase.TransformUsecase,
	runUsecase usecase.PipelineRunUsecase,
	validator *validator.CustomValidator,
) *PipelineHandler {
	return &PipelineHandler{
		ingestUsecase:    ingestUsecase,
		transformUsecase: transformUsecase,
		runUsecase:       runUsecase,
		validator:        validator,
	}
}

func (h *PipelineHandler) IngestBundle(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBundleBytes))
	if err != nil {
		response.Error(w, http.StatusRequestEntityTooLarge, "Bundle too large", nil)
		return
	}
	if len(raw) == 0 {
		response.Error(w, http.StatusBadRequest, "Request body is required", nil)
		return
	}

	result, err := h.ingestUsecase.IngestBundle(r.Context(), raw, triggeredBy(r))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidBundle):
			response.Error(w, http.StatusBadRequest, "Invalid FHIR bundle", nil)
		case errors.Is(err, usecase.ErrEmptyBundle):
			response.Error(w, http.StatusBadRequest, "Bundle contains no entries", nil)
		default:
			response.InternalServerError(w, "Failed to ingest bundle")
		}
		return
	}

	response.Success(w, http.StatusAccepted, "Bundle ingested successfully", result)
}

func (h *PipelineHandler) IngestSynthetic(w http.ResponseWriter, r *http.Request) {
	var req dto.IngestSyntheticRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.ingestUsecase.IngestSynthetic(r.Context(), req.BatchSize, triggeredBy(r))
	if err != nil {
		response.InternalServerError(w, "Failed to ingest synthetic batch")
		return
	}

	response.Success(w, http.StatusAccepted, "Synthetic batch ingested successfully", result)
}

func (h *PipelineHandler) RunTransform(w http.ResponseWriter, r *http.Request) {
	result, err := h.transformUsecase.Run(r.Context(), triggeredBy(r))
	if err != nil {
		response.InternalServerError(w, "Failed to run transformation")
		return
	}

	response.Success(w, http.StatusOK, "Transformation completed successfully", result)
}

func (h *PipelineHandler) GetAllRuns(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	runs, err := h.runUsecase.GetAllRuns(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get pipeline runs")
		return
	}

	response.Success(w, http.StatusOK, "Pipeline runs retrieved successfully", runs)
}

func (h *PipelineHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	runID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid run ID", nil)
		return
	}

	run, err := h.runUsecase.GetRun(r.Context(), runID)
	if err != nil {
		if errors.Is(err, usecase.ErrPipelineRunNotFound) {
			response.NotFound(w, "Pipeline run not found")
			return
		}
		response.InternalServerError(w, "Failed to get pipeline run")
		return
	}

	response.Success(w, http.StatusOK, "Pipeline run retrieved successfully", run)
}

func (h *PipelineHandler) GetQualityReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.transformUsecase.GetLatestQualityReport(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNoQualityReport) {
			response.NotFound(w, "No quality report available")
			return
		}
		response.InternalServerError(w, "Failed to get quality report")
		return
	}

	response.Success(w, http.StatusOK, "Quality report retrieved successfully", report)
}

func triggeredBy(r *http.Request) string {
	if clientID, ok := middleware.GetClientIDFromContext(r.Context()); ok {
		return clientID
	}
	return entity.TriggerHTTP
}
