package usecase

import (
	"testing"
	"time"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/config"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/fhir"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/service"
)

func TestParseBirthDate(t *testing.T) {
	if got := parseBirthDate(""); got != nil {
		t.Errorf("parseBirthDate(\"\") = %v, want nil", got)
	}
	if got := parseBirthDate("not-a-date"); got != nil {
		t.Errorf("parseBirthDate(\"not-a-date\") = %v, want nil", got)
	}

	got := parseBirthDate("1985-05-15")
	if got == nil {
		t.Fatal("parseBirthDate(\"1985-05-15\") = nil, want value")
	}
	want := time.Date(1985, time.May, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseBirthDate(\"1985-05-15\") = %v, want %v", got, want)
	}
}

func TestToSilver(t *testing.T) {
	u := &transformUsecase{
		cfg:     config.PipelineConfig{DataSource: "FHIR-R4-API"},
		masking: service.NewMaskingService(),
	}

	patient := &fhir.Patient{
		ResourceType: "Patient",
		ID:           "1001",
		Identifier:   []fhir.Identifier{{Value: "MRN001001"}},
		Name:         []fhir.HumanName{{Family: "Smith", Given: []string{"Johnathan"}}},
		Gender:       "male",
		BirthDate:    "1985-05-15",
		Address:      []fhir.Address{{City: "New York", PostalCode: "10001"}},
		SSN:          "123-45-6789",
	}

	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	birthDate := parseBirthDate(patient.BirthDate)

	silver := u.toSilver(patient, birthDate, now)

	if silver.PatientID == nil || *silver.PatientID != "1001" {
		t.Errorf("PatientID = %v, want 1001", silver.PatientID)
	}
	if silver.NameInitial != "J. Smith" {
		t.Errorf("NameInitial = %q, want %q", silver.NameInitial, "J. Smith")
	}
	if silver.BirthDate == nil || !silver.BirthDate.Equal(*birthDate) {
		t.Errorf("BirthDate = %v, want %v", silver.BirthDate, birthDate)
	}
	if silver.Gender != "male" {
		t.Errorf("Gender = %q, want male", silver.Gender)
	}
	if silver.ZipRegion != "100" {
		t.Errorf("ZipRegion = %q, want 100", silver.ZipRegion)
	}
	if silver.MRNMasked != "***1001" {
		t.Errorf("MRNMasked = %q, want ***1001", silver.MRNMasked)
	}
	if silver.SSNMasked == nil || *silver.SSNMasked != "***-**-6789" {
		t.Errorf("SSNMasked = %v, want ***-**-6789", silver.SSNMasked)
	}
	if !silver.IngestionTimestamp.Equal(now) {
		t.Errorf("IngestionTimestamp = %v, want %v", silver.IngestionTimestamp, now)
	}
	if silver.DataSource != "FHIR-R4-API" {
		t.Errorf("DataSource = %q, want FHIR-R4-API", silver.DataSource)
	}
	if silver.ComplianceFlag != entity.ComplianceFlagMasked {
		t.Errorf("ComplianceFlag = %q, want %q", silver.ComplianceFlag, entity.ComplianceFlagMasked)
	}
}

func TestToSilver_MissingOptionalFields(t *testing.T) {
	u := &transformUsecase{
		cfg:     config.PipelineConfig{DataSource: "FHIR-R4-API"},
		masking: service.NewMaskingService(),
	}

	patient := &fhir.Patient{ResourceType: "Patient", Gender: "unknown"}
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	silver := u.toSilver(patient, nil, now)

	if silver.PatientID != nil {
		t.Errorf("PatientID = %v, want nil", silver.PatientID)
	}
	if silver.BirthDate != nil {
		t.Errorf("BirthDate = %v, want nil", silver.BirthDate)
	}
	if silver.SSNMasked != nil {
		t.Errorf("SSNMasked = %v, want nil", silver.SSNMasked)
	}
	if silver.ZipRegion != service.ZipRegionUnknown {
		t.Errorf("ZipRegion = %q, want %q", silver.ZipRegion, service.ZipRegionUnknown)
	}
}
