package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/usecase"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/pkg/response"

	"github.com/gorilla/mux"
)

type StagingHandler struct {
	stagingUsecase usecase.StagingUsecase
}

func NewStagingHandler(stagingUsecase usecase.StagingUsecase) *StagingHandler {
	return &StagingHandler{
		stagingUsecase: stagingUsecase,
	}
}

func (h *StagingHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	patients, err := h.stagingUsecase.QueryPatients(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to query staged patients")
		return
	}

	response.Success(w, http.StatusOK, "Staged patients retrieved successfully", patients)
}

func (h *StagingHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID := vars["id"]

	patient, err := h.stagingUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, usecase.ErrStagedPatientNotFound) {
			response.NotFound(w, "Staged patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get staged patient")
		return
	}

	response.Success(w, http.StatusOK, "Staged patient retrieved successfully", patient)
}
