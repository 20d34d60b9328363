package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/fhir"
)

func TestGenerateBatch(t *testing.T) {
	generator := NewGeneratorService()

	const size = 5
	bundle := generator.GenerateBatch(size)

	if bundle.ResourceType != "Bundle" || bundle.Type != "collection" {
		t.Errorf("got %s/%s, want Bundle/collection", bundle.ResourceType, bundle.Type)
	}

	patients := 0
	observations := 0
	for _, entry := range bundle.Entry {
		header, err := entry.Header()
		if err != nil {
			t.Fatalf("unreadable entry: %v", err)
		}

		switch header.ResourceType {
		case "Patient":
			patients++
			var patient fhir.Patient
			if err := json.Unmarshal(entry.Resource, &patient); err != nil {
				t.Fatalf("failed to decode patient: %v", err)
			}
			if patient.ID == "" {
				t.Error("generated patient has no id")
			}
			if _, err := time.Parse("2006-01-02", patient.BirthDate); err != nil {
				t.Errorf("birthDate %q is not a date: %v", patient.BirthDate, err)
			}
			if patient.Gender != "male" && patient.Gender != "female" {
				t.Errorf("unexpected gender %q", patient.Gender)
			}
			if patient.MRN() == "" {
				t.Error("generated patient has no MRN")
			}
			if patient.SSN == "" {
				t.Error("generated patient has no SSN")
			}
			if patient.PostalCode() == "" {
				t.Error("generated patient has no postal code")
			}
		case "Observation":
			observations++
			var obs fhir.Observation
			if err := json.Unmarshal(entry.Resource, &obs); err != nil {
				t.Fatalf("failed to decode observation: %v", err)
			}
			if obs.ValueQuantity == nil {
				t.Error("generated observation has no value")
			}
		default:
			t.Errorf("unexpected resource type %q", header.ResourceType)
		}
	}

	if patients != size {
		t.Errorf("got %d patients, want %d", patients, size)
	}
	// Each patient carries one to three observations.
	if observations < size || observations > 3*size {
		t.Errorf("got %d observations, want between %d and %d", observations, size, 3*size)
	}
}
