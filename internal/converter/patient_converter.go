package converter

import (
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/delivery/dto"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"
)

// StagedPatientToResponse converts a StagedPatient view row to its DTO
func StagedPatientToResponse(patient *entity.StagedPatient) *dto.StagedPatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.StagedPatientResponse{
		PatientID:           patient.PatientID,
		PatientName:         patient.PatientName,
		DateOfBirth:         patient.DateOfBirth.Format("2006-01-02"),
		Gender:              patient.Gender,
		GeographicRegion:    patient.GeographicRegion,
		MedicalRecordNumber: patient.MedicalRecordNumber,
		IngestionTimestamp:  patient.IngestionTimestamp,
		DataSource:          patient.DataSource,
		ComplianceFlag:      patient.ComplianceFlag,
		AgeYears:            patient.AgeYears,
		AgeGroup:            patient.AgeGroup,
	}
}

func StagedPatientsToResponses(patients []entity.StagedPatient) []*dto.StagedPatientResponse {
	responses := make([]*dto.StagedPatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, StagedPatientToResponse(&patients[i]))
	}
	return responses
}
