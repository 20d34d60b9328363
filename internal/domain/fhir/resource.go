package fhir

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Minimal FHIR R4 shapes. Only the fields the pipeline reads are bound;
// everything else survives untouched inside the raw bundle entries.

var ErrNotABundle = errors.New("document is not a FHIR Bundle")

type Bundle struct {
	ResourceType string        `json:"resourceType"`
	Type         string        `json:"type"`
	Timestamp    string        `json:"timestamp,omitempty"`
	Entry        []BundleEntry `json:"entry"`
}

type BundleEntry struct {
	Resource json.RawMessage `json:"resource"`
}

// ResourceHeader is the common envelope used to dispatch on resource type.
type ResourceHeader struct {
	ResourceType string `json:"resourceType"`
	ID           string `json:"id"`
}

type Meta struct {
	VersionID   string `json:"versionId,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}

type Identifier struct {
	System string `json:"system,omitempty"`
	Value  string `json:"value"`
}

type HumanName struct {
	Use    string   `json:"use,omitempty"`
	Family string   `json:"family"`
	Given  []string `json:"given"`
}

type Address struct {
	Use        string `json:"use,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

type Reference struct {
	Display   string `json:"display,omitempty"`
	Reference string `json:"reference,omitempty"`
}

type Patient struct {
	ResourceType        string       `json:"resourceType"`
	ID                  string       `json:"id"`
	Meta                *Meta        `json:"meta,omitempty"`
	Identifier          []Identifier `json:"identifier,omitempty"`
	Name                []HumanName  `json:"name,omitempty"`
	Gender              string       `json:"gender,omitempty"`
	BirthDate           string       `json:"birthDate,omitempty"`
	Address             []Address    `json:"address,omitempty"`
	GeneralPractitioner []Reference  `json:"generalPractitioner,omitempty"`
	// SSN rides along in the simulated feed as a top-level extension field.
	SSN string `json:"ssn,omitempty"`
}

type Coding struct {
	System  string `json:"system,omitempty"`
	Code    string `json:"code"`
	Display string `json:"display,omitempty"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding"`
}

type Quantity struct {
	Value  float64 `json:"value"`
	Unit   string  `json:"unit,omitempty"`
	System string  `json:"system,omitempty"`
}

type Observation struct {
	ResourceType      string            `json:"resourceType"`
	ID                string            `json:"id"`
	Status            string            `json:"status,omitempty"`
	Category          []CodeableConcept `json:"category,omitempty"`
	Code              CodeableConcept   `json:"code"`
	Subject           Reference         `json:"subject"`
	EffectiveDateTime string            `json:"effectiveDateTime,omitempty"`
	ValueQuantity     *Quantity         `json:"valueQuantity,omitempty"`
}

// ParseBundle decodes a collection bundle from raw JSON.
func ParseBundle(data []byte) (*Bundle, error) {
	var bundle Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	if bundle.ResourceType != "Bundle" {
		return nil, ErrNotABundle
	}
	return &bundle, nil
}

// Header decodes only the resource envelope of a bundle entry.
func (e BundleEntry) Header() (ResourceHeader, error) {
	var header ResourceHeader
	if err := json.Unmarshal(e.Resource, &header); err != nil {
		return header, fmt.Errorf("decode resource header: %w", err)
	}
	return header, nil
}

// MRN returns the first identifier value, the medical record number in the
// simulated feed.
func (p *Patient) MRN() string {
	if len(p.Identifier) == 0 {
		return ""
	}
	return p.Identifier[0].Value
}

// OfficialName returns the first given name and family name.
func (p *Patient) OfficialName() (given, family string) {
	if len(p.Name) == 0 {
		return "", ""
	}
	name := p.Name[0]
	if len(name.Given) > 0 {
		given = name.Given[0]
	}
	return given, name.Family
}

// PostalCode returns the postal code of the first address, if any.
func (p *Patient) PostalCode() string {
	if len(p.Address) == 0 {
		return ""
	}
	return p.Address[0].PostalCode
}
