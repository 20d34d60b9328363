package service

import (
	"testing"
	"time"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/fhir"

	"github.com/sirupsen/logrus"
)

func testPatient() *fhir.Patient {
	return &fhir.Patient{
		ResourceType: "Patient",
		ID:           "1001",
		Gender:       "female",
		BirthDate:    "1985-05-15",
	}
}

func testBirthDate(value string) *time.Time {
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return nil
	}
	return &parsed
}

func TestCheckPatient(t *testing.T) {
	quality := NewQualityService(logrus.New())
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mutate    func(*fhir.Patient)
		birthDate *time.Time
		want      []string
	}{
		{
			name:      "valid patient passes all checks",
			mutate:    func(p *fhir.Patient) {},
			birthDate: testBirthDate("1985-05-15"),
			want:      nil,
		},
		{
			name:      "missing id",
			mutate:    func(p *fhir.Patient) { p.ID = "" },
			birthDate: testBirthDate("1985-05-15"),
			want:      []string{CheckMissingPatientID},
		},
		{
			name:      "missing birth date",
			mutate:    func(p *fhir.Patient) {},
			birthDate: nil,
			want:      []string{CheckInvalidBirthDate},
		},
		{
			name:      "birth year before 1900",
			mutate:    func(p *fhir.Patient) {},
			birthDate: testBirthDate("1899-12-31"),
			want:      []string{CheckInvalidBirthDate},
		},
		{
			name:      "birth year in the future",
			mutate:    func(p *fhir.Patient) {},
			birthDate: testBirthDate("2026-01-01"),
			want:      []string{CheckInvalidBirthDate},
		},
		{
			name:      "birth year 1900 is accepted",
			mutate:    func(p *fhir.Patient) {},
			birthDate: testBirthDate("1900-01-01"),
			want:      nil,
		},
		{
			name:      "single-letter gender code rejected",
			mutate:    func(p *fhir.Patient) { p.Gender = "F" },
			birthDate: testBirthDate("1985-05-15"),
			want:      []string{CheckInvalidGender},
		},
		{
			name:      "unknown gender value accepted",
			mutate:    func(p *fhir.Patient) { p.Gender = "unknown" },
			birthDate: testBirthDate("1985-05-15"),
			want:      nil,
		},
		{
			name:      "multiple violations reported together",
			mutate:    func(p *fhir.Patient) { p.ID = ""; p.Gender = "" },
			birthDate: nil,
			want:      []string{CheckMissingPatientID, CheckInvalidBirthDate, CheckInvalidGender},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patient := testPatient()
			tt.mutate(patient)

			got := quality.CheckPatient(patient, tt.birthDate, now)
			if len(got) != len(tt.want) {
				t.Fatalf("got violations %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("violation[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRecordVerdict(t *testing.T) {
	quality := NewQualityService(logrus.New())
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	report := quality.NewReport(now)
	quality.RecordVerdict(report, nil)
	quality.RecordVerdict(report, nil)
	quality.RecordVerdict(report, []string{CheckMissingPatientID})
	quality.RecordVerdict(report, []string{CheckInvalidBirthDate, CheckInvalidGender})

	if report.RecordsIn != 4 {
		t.Errorf("RecordsIn = %d, want 4", report.RecordsIn)
	}
	if report.RecordsValid != 2 {
		t.Errorf("RecordsValid = %d, want 2", report.RecordsValid)
	}
	if report.RecordsDropped != 2 {
		t.Errorf("RecordsDropped = %d, want 2", report.RecordsDropped)
	}
	if report.DroppedByCheck[CheckMissingPatientID] != 1 {
		t.Errorf("DroppedByCheck[%s] = %d, want 1", CheckMissingPatientID, report.DroppedByCheck[CheckMissingPatientID])
	}
	if report.DroppedByCheck[CheckInvalidBirthDate] != 1 {
		t.Errorf("DroppedByCheck[%s] = %d, want 1", CheckInvalidBirthDate, report.DroppedByCheck[CheckInvalidBirthDate])
	}
	if report.DroppedByCheck[CheckInvalidGender] != 1 {
		t.Errorf("DroppedByCheck[%s] = %d, want 1", CheckInvalidGender, report.DroppedByCheck[CheckInvalidGender])
	}
	if !report.GeneratedAt.Equal(now) {
		t.Errorf("GeneratedAt = %v, want %v", report.GeneratedAt, now)
	}
}
