package entity

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAgeYearsAt(t *testing.T) {
	tests := []struct {
		name       string
		birth      time.Time
		processing time.Time
		want       int
	}{
		{
			name:       "born today",
			birth:      date(2025, time.January, 1),
			processing: date(2025, time.January, 1),
			want:       0,
		},
		{
			name:       "twenty years before processing date",
			birth:      date(2006, time.January, 1),
			processing: date(2026, time.January, 1),
			want:       20,
		},
		{
			name:       "eighteen years before processing date",
			birth:      date(2008, time.January, 1),
			processing: date(2026, time.January, 1),
			want:       18,
		},
		{
			name:       "sixty-five years before processing date",
			birth:      date(1960, time.January, 1),
			processing: date(2025, time.January, 1),
			want:       65,
		},
		{
			name:       "64 years and 11 months floors to 64",
			birth:      date(1960, time.February, 1),
			processing: date(2025, time.January, 1),
			want:       64,
		},
		{
			name:       "time of day is ignored",
			birth:      date(2006, time.January, 1).Add(23 * time.Hour),
			processing: date(2026, time.January, 1).Add(1 * time.Minute),
			want:       20,
		},
		{
			name:       "birth after processing date clamps to zero",
			birth:      date(2030, time.January, 1),
			processing: date(2025, time.January, 1),
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AgeYearsAt(tt.birth, tt.processing)
			if got != tt.want {
				t.Errorf("AgeYearsAt(%s, %s) = %d, want %d",
					tt.birth.Format("2006-01-02"), tt.processing.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestAgeGroupFor(t *testing.T) {
	tests := []struct {
		ageYears int
		want     string
	}{
		{0, AgeGroupPediatric},
		{16, AgeGroupPediatric},
		{17, AgeGroupPediatric},
		{18, AgeGroupAdult},
		{40, AgeGroupAdult},
		{64, AgeGroupAdult},
		{65, AgeGroupSenior},
		{100, AgeGroupSenior},
	}

	for _, tt := range tests {
		got := AgeGroupFor(tt.ageYears)
		if got != tt.want {
			t.Errorf("AgeGroupFor(%d) = %q, want %q", tt.ageYears, got, tt.want)
		}
	}
}

func TestAgeGroupBoundariesFromBirthDates(t *testing.T) {
	processing := date(2025, time.January, 1)

	tests := []struct {
		name  string
		birth time.Time
		want  string
	}{
		{"seventeen years before processing", date(2008, time.January, 1), AgeGroupPediatric},
		{"eighteen years before processing", date(2007, time.January, 1), AgeGroupAdult},
		{"sixty-five years before processing", date(1960, time.January, 1), AgeGroupSenior},
		// 64 years 11 months: fractional age is nearly 65 but whole years floor to 64
		{"just under sixty-five years", date(1960, time.February, 1), AgeGroupAdult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AgeGroupFor(AgeYearsAt(tt.birth, processing))
			if got != tt.want {
				t.Errorf("age group for birth %s = %q, want %q", tt.birth.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}
