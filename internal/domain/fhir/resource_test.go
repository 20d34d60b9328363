package fhir

import (
	"errors"
	"testing"
)

const sampleBundle = `{
	"resourceType": "Bundle",
	"type": "collection",
	"entry": [
		{"resource": {
			"resourceType": "Patient",
			"id": "1001",
			"identifier": [{"value": "MRN001001"}],
			"name": [{"family": "Smith", "given": ["Johnathan"]}],
			"gender": "male",
			"birthDate": "1985-05-15",
			"address": [{"city": "New York", "postalCode": "10001"}]
		}},
		{"resource": {
			"resourceType": "Observation",
			"id": "obs-1001",
			"subject": {"reference": "Patient/1001"},
			"valueQuantity": {"value": 120, "unit": "beats/min"}
		}}
	]
}`

func TestParseBundle(t *testing.T) {
	bundle, err := ParseBundle([]byte(sampleBundle))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bundle.Type != "collection" {
		t.Errorf("bundle type = %q, want %q", bundle.Type, "collection")
	}
	if len(bundle.Entry) != 2 {
		t.Fatalf("got %d entries, want 2", len(bundle.Entry))
	}

	header, err := bundle.Entry[0].Header()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if header.ResourceType != "Patient" || header.ID != "1001" {
		t.Errorf("header = %+v, want Patient/1001", header)
	}
}

func TestParseBundle_NotABundle(t *testing.T) {
	_, err := ParseBundle([]byte(`{"resourceType": "Patient", "id": "1"}`))
	if !errors.Is(err, ErrNotABundle) {
		t.Errorf("got error %v, want ErrNotABundle", err)
	}
}

func TestParseBundle_InvalidJSON(t *testing.T) {
	_, err := ParseBundle([]byte(`{not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestPatientHelpers(t *testing.T) {
	patient := Patient{
		Identifier: []Identifier{{Value: "MRN001001"}},
		Name:       []HumanName{{Family: "Smith", Given: []string{"Johnathan"}}},
		Address:    []Address{{PostalCode: "10001"}},
	}

	if got := patient.MRN(); got != "MRN001001" {
		t.Errorf("MRN() = %q, want %q", got, "MRN001001")
	}

	given, family := patient.OfficialName()
	if given != "Johnathan" || family != "Smith" {
		t.Errorf("OfficialName() = (%q, %q), want (Johnathan, Smith)", given, family)
	}

	if got := patient.PostalCode(); got != "10001" {
		t.Errorf("PostalCode() = %q, want %q", got, "10001")
	}
}

func TestPatientHelpers_Empty(t *testing.T) {
	var patient Patient

	if got := patient.MRN(); got != "" {
		t.Errorf("MRN() = %q, want empty", got)
	}
	given, family := patient.OfficialName()
	if given != "" || family != "" {
		t.Errorf("OfficialName() = (%q, %q), want empty", given, family)
	}
	if got := patient.PostalCode(); got != "" {
		t.Errorf("PostalCode() = %q, want empty", got)
	}
}
