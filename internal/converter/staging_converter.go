package converter

import (
	"time"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"
)

// SilverPatientToStaged projects one silver row into the staging view at the
// given processing date. Returns false when the row is filtered out: a
// mismatched compliance flag, a null patient id or a null birth date all
// drop the row silently.
func SilverPatientToStaged(patient *entity.SilverPatient, processingDate time.Time) (*entity.StagedPatient, bool) {
	if patient == nil {
		return nil, false
	}
	if patient.ComplianceFlag != entity.ComplianceFlagMasked {
		return nil, false
	}
	if patient.PatientID == nil || patient.BirthDate == nil {
		return nil, false
	}

	ageYears := entity.AgeYearsAt(*patient.BirthDate, processingDate)

	return &entity.StagedPatient{
		PatientID:           *patient.PatientID,
		PatientName:         patient.NameInitial,
		DateOfBirth:         *patient.BirthDate,
		Gender:              patient.Gender,
		GeographicRegion:    patient.ZipRegion,
		MedicalRecordNumber: patient.MRNMasked,
		IngestionTimestamp:  patient.IngestionTimestamp,
		DataSource:          patient.DataSource,
		ComplianceFlag:      patient.ComplianceFlag,
		AgeYears:            ageYears,
		AgeGroup:            entity.AgeGroupFor(ageYears),
	}, true
}

// SilverPatientsToStaged evaluates the staging view over a slice of silver
// rows: one output row per surviving input row, input order preserved, no
// aggregation or deduplication.
func SilverPatientsToStaged(patients []entity.SilverPatient, processingDate time.Time) []entity.StagedPatient {
	staged := make([]entity.StagedPatient, 0, len(patients))
	for i := range patients {
		row, ok := SilverPatientToStaged(&patients[i], processingDate)
		if !ok {
			continue
		}
		staged = append(staged, *row)
	}
	return staged
}
