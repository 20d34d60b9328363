package service

import "testing"

func TestMaskName(t *testing.T) {
	masker := NewMaskingService()

	tests := []struct {
		given  string
		family string
		want   string
	}{
		{"Johnathan", "Smith", "J. Smith"},
		{"Maria", "Johnson", "M. Johnson"},
		{"", "Smith", "Smith"},
		{"Jane", "", "J."},
		{"", "", ""},
	}

	for _, tt := range tests {
		got := masker.MaskName(tt.given, tt.family)
		if got != tt.want {
			t.Errorf("MaskName(%q, %q) = %q, want %q", tt.given, tt.family, got, tt.want)
		}
	}
}

func TestMaskSSN(t *testing.T) {
	masker := NewMaskingService()

	tests := []struct {
		ssn  string
		want string
	}{
		{"123-45-6789", "***-**-6789"},
		{"987-65-4321", "***-**-4321"},
		{"", ""},
	}

	for _, tt := range tests {
		got := masker.MaskSSN(tt.ssn)
		if got != tt.want {
			t.Errorf("MaskSSN(%q) = %q, want %q", tt.ssn, got, tt.want)
		}
	}
}

func TestMaskMRN(t *testing.T) {
	masker := NewMaskingService()

	tests := []struct {
		mrn  string
		want string
	}{
		{"MRN001001", "***1001"},
		{"MRN001002", "***1002"},
		{"", ""},
	}

	for _, tt := range tests {
		got := masker.MaskMRN(tt.mrn)
		if got != tt.want {
			t.Errorf("MaskMRN(%q) = %q, want %q", tt.mrn, got, tt.want)
		}
	}
}

func TestZipRegion(t *testing.T) {
	masker := NewMaskingService()

	tests := []struct {
		postalCode string
		want       string
	}{
		{"10001", "100"},
		{"94105", "941"},
		{"021", "021"},
		{"12", ZipRegionUnknown},
		{"", ZipRegionUnknown},
	}

	for _, tt := range tests {
		got := masker.ZipRegion(tt.postalCode)
		if got != tt.want {
			t.Errorf("ZipRegion(%q) = %q, want %q", tt.postalCode, got, tt.want)
		}
	}
}
