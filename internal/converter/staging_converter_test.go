package converter

import (
	"reflect"
	"testing"
	"time"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func validSilverPatient() entity.SilverPatient {
	ingested := date(2025, time.January, 1).Add(10 * time.Hour)
	return entity.SilverPatient{
		ID:                 1,
		PatientID:          strPtr("P1"),
		NameInitial:        "J.D.",
		BirthDate:          timePtr(date(2006, time.January, 1)),
		Gender:             "male",
		ZipRegion:          "941",
		MRNMasked:          "***0123",
		IngestionTimestamp: ingested,
		DataSource:         "EpicSim",
		ComplianceFlag:     entity.ComplianceFlagMasked,
	}
}

func TestSilverPatientToStaged_FiltersNonCompliantRows(t *testing.T) {
	processing := date(2026, time.January, 1)

	tests := []struct {
		name    string
		mutate  func(*entity.SilverPatient)
		wantRow bool
	}{
		{"compliant row survives", func(p *entity.SilverPatient) {}, true},
		{"wrong compliance flag dropped", func(p *entity.SilverPatient) { p.ComplianceFlag = "RAW" }, false},
		{"empty compliance flag dropped", func(p *entity.SilverPatient) { p.ComplianceFlag = "" }, false},
		{"lowercase compliance flag dropped", func(p *entity.SilverPatient) { p.ComplianceFlag = "hipaa-masked" }, false},
		{"null patient id dropped", func(p *entity.SilverPatient) { p.PatientID = nil }, false},
		{"null birth date dropped", func(p *entity.SilverPatient) { p.BirthDate = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patient := validSilverPatient()
			tt.mutate(&patient)

			_, ok := SilverPatientToStaged(&patient, processing)
			if ok != tt.wantRow {
				t.Errorf("got row=%v, want row=%v", ok, tt.wantRow)
			}
		})
	}
}

func TestSilverPatientToStaged_MapsAndDerivesFields(t *testing.T) {
	// Birth date is exactly twenty years before the processing date.
	processing := date(2026, time.January, 1)
	patient := validSilverPatient()

	staged, ok := SilverPatientToStaged(&patient, processing)
	if !ok {
		t.Fatal("expected row to survive the staging filter")
	}

	if staged.PatientID != "P1" {
		t.Errorf("patient_id = %q, want %q", staged.PatientID, "P1")
	}
	if staged.PatientName != "J.D." {
		t.Errorf("patient_name = %q, want %q", staged.PatientName, "J.D.")
	}
	if !staged.DateOfBirth.Equal(*patient.BirthDate) {
		t.Errorf("date_of_birth = %v, want %v", staged.DateOfBirth, *patient.BirthDate)
	}
	if staged.Gender != "male" {
		t.Errorf("gender = %q, want %q", staged.Gender, "male")
	}
	if staged.GeographicRegion != "941" {
		t.Errorf("geographic_region = %q, want %q", staged.GeographicRegion, "941")
	}
	if staged.MedicalRecordNumber != "***0123" {
		t.Errorf("medical_record_number = %q, want %q", staged.MedicalRecordNumber, "***0123")
	}
	if !staged.IngestionTimestamp.Equal(patient.IngestionTimestamp) {
		t.Errorf("ingestion_timestamp = %v, want %v", staged.IngestionTimestamp, patient.IngestionTimestamp)
	}
	if staged.DataSource != "EpicSim" {
		t.Errorf("data_source = %q, want %q", staged.DataSource, "EpicSim")
	}
	if staged.ComplianceFlag != entity.ComplianceFlagMasked {
		t.Errorf("compliance_flag = %q, want %q", staged.ComplianceFlag, entity.ComplianceFlagMasked)
	}
	if staged.AgeYears != 20 {
		t.Errorf("age_years = %d, want 20", staged.AgeYears)
	}
	if staged.AgeGroup != entity.AgeGroupAdult {
		t.Errorf("age_group = %q, want %q", staged.AgeGroup, entity.AgeGroupAdult)
	}
}

func TestSilverPatientsToStaged_OneRowPerSurvivingInput(t *testing.T) {
	processing := date(2026, time.January, 1)

	dropped := validSilverPatient()
	dropped.PatientID = strPtr("P2")
	dropped.ComplianceFlag = "RAW"

	second := validSilverPatient()
	second.ID = 3
	second.PatientID = strPtr("P3")

	input := []entity.SilverPatient{validSilverPatient(), dropped, second}

	staged := SilverPatientsToStaged(input, processing)

	if len(staged) != 2 {
		t.Fatalf("got %d staged rows, want 2", len(staged))
	}
	// Input order is preserved, no aggregation or dedup.
	if staged[0].PatientID != "P1" || staged[1].PatientID != "P3" {
		t.Errorf("got order [%s %s], want [P1 P3]", staged[0].PatientID, staged[1].PatientID)
	}
}

func TestSilverPatientsToStaged_IdempotentAtFixedProcessingDate(t *testing.T) {
	processing := date(2026, time.January, 1)
	input := []entity.SilverPatient{validSilverPatient()}

	first := SilverPatientsToStaged(input, processing)
	second := SilverPatientsToStaged(input, processing)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-running the projection on the same snapshot changed the output:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestSilverPatientsToStaged_EmptyInput(t *testing.T) {
	staged := SilverPatientsToStaged(nil, date(2026, time.January, 1))
	if len(staged) != 0 {
		t.Errorf("got %d rows from empty input, want 0", len(staged))
	}
}
