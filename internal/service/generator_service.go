package service

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/fhir"
)

// GeneratorService produces synthetic FHIR R4 resources for exercising the
// pipeline without a live EHR feed.
type GeneratorService interface {
	GenerateBatch(size int) *fhir.Bundle
}

type generatorService struct {
	rng *rand.Rand
}

func NewGeneratorService() GeneratorService {
	return &generatorService{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var (
	givenNames  = []string{"John", "Jane", "Robert", "Maria", "David", "Lisa"}
	familyNames = []string{"Smith", "Johnson", "Williams", "Brown", "Jones"}
	providers   = []string{"Dr. Sarah Smith", "Dr. James Johnson", "Dr. Emily Brown"}
	genders     = []string{"male", "female"}
)

type vitalSign struct {
	code    string
	display string
	unit    string
	min     float64
	max     float64
}

var vitalSigns = []vitalSign{
	{code: "8867-4", display: "Heart rate", unit: "beats/min", min: 60, max: 100},
	{code: "2708-6", display: "Oxygen saturation", unit: "%", min: 95, max: 100},
	{code: "8310-5", display: "Body temperature", unit: "Cel", min: 36.5, max: 37.5},
}

// GenerateBatch builds a collection bundle with size patients, each carrying
// one to three vital-sign observations.
func (s *generatorService) GenerateBatch(size int) *fhir.Bundle {
	bundle := &fhir.Bundle{
		ResourceType: "Bundle",
		Type:         "collection",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}

	for i := 0; i < size; i++ {
		patientID := fmt.Sprintf("%d", 1000+i)

		bundle.Entry = append(bundle.Entry, fhir.BundleEntry{
			Resource: mustMarshal(s.generatePatient(patientID)),
		})

		for j := 0; j < 1+s.rng.Intn(3); j++ {
			bundle.Entry = append(bundle.Entry, fhir.BundleEntry{
				Resource: mustMarshal(s.generateObservation(patientID)),
			})
		}
	}

	return bundle
}

func mustMarshal(v interface{}) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func (s *generatorService) generatePatient(patientID string) *fhir.Patient {
	// 18-85 years old
	daysOld := 18*365 + s.rng.Intn(67*365)
	birthDate := time.Now().AddDate(0, 0, -daysOld).Format("2006-01-02")

	return &fhir.Patient{
		ResourceType: "Patient",
		ID:           patientID,
		Meta: &fhir.Meta{
			VersionID:   "1",
			LastUpdated: time.Now().UTC().Format(time.RFC3339),
		},
		Identifier: []fhir.Identifier{{
			System: "http://hospital.smarthealth.com/mrn",
			Value:  "MRN00" + patientID,
		}},
		Name: []fhir.HumanName{{
			Use:    "official",
			Family: familyNames[s.rng.Intn(len(familyNames))],
			Given:  []string{givenNames[s.rng.Intn(len(givenNames))]},
		}},
		Gender:    genders[s.rng.Intn(len(genders))],
		BirthDate: birthDate,
		Address: []fhir.Address{{
			Use:        "home",
			City:       "New York",
			State:      "NY",
			PostalCode: fmt.Sprintf("%05d", 10000+s.rng.Intn(90000)),
		}},
		GeneralPractitioner: []fhir.Reference{{
			Display: providers[s.rng.Intn(len(providers))],
		}},
		SSN: fmt.Sprintf("%03d-%02d-%04d", s.rng.Intn(900)+100, s.rng.Intn(90)+10, s.rng.Intn(9000)+1000),
	}
}

func (s *generatorService) generateObservation(patientID string) *fhir.Observation {
	vs := vitalSigns[s.rng.Intn(len(vitalSigns))]
	value := vs.min + s.rng.Float64()*(vs.max-vs.min)

	return &fhir.Observation{
		ResourceType: "Observation",
		ID:           fmt.Sprintf("obs-%s-%d", patientID, 1000+s.rng.Intn(9000)),
		Status:       "final",
		Category: []fhir.CodeableConcept{{
			Coding: []fhir.Coding{{
				System:  "http://terminology.hl7.org/CodeSystem/observation-category",
				Code:    "vital-signs",
				Display: "Vital Signs",
			}},
		}},
		Code: fhir.CodeableConcept{
			Coding: []fhir.Coding{{
				System:  "http://loinc.org",
				Code:    vs.code,
				Display: vs.display,
			}},
		},
		Subject: fhir.Reference{
			Reference: "Patient/" + patientID,
		},
		EffectiveDateTime: time.Now().UTC().Format(time.RFC3339),
		ValueQuantity: &fhir.Quantity{
			Value:  float64(int(value*10)) / 10,
			Unit:   vs.unit,
			System: "http://unitsofmeasure.org",
		},
	}
}
