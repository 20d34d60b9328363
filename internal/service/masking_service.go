package service

// MaskingService applies the HIPAA de-identification rules used by the
// bronze-to-silver transform.
type MaskingService interface {
	MaskName(given, family string) string
	MaskSSN(ssn string) string
	MaskMRN(mrn string) string
	ZipRegion(postalCode string) string
}

// ZipRegionUnknown is stored when a patient has no usable postal code.
const ZipRegionUnknown = "UNK"

type maskingService struct{}

func NewMaskingService() MaskingService {
	return &maskingService{}
}

// MaskName reduces a full name to initial form: "Johnathan Smith" -> "J. Smith".
func (s *maskingService) MaskName(given, family string) string {
	if given == "" {
		return family
	}
	initial := string([]rune(given)[0]) + "."
	if family == "" {
		return initial
	}
	return initial + " " + family
}

// MaskSSN keeps only the last four digits: "123-45-6789" -> "***-**-6789".
func (s *maskingService) MaskSSN(ssn string) string {
	if ssn == "" {
		return ""
	}
	return "***-**-" + lastN(ssn, 4)
}

// MaskMRN keeps only the last four characters: "MRN001001" -> "***1001".
func (s *maskingService) MaskMRN(mrn string) string {
	if mrn == "" {
		return ""
	}
	return "***" + lastN(mrn, 4)
}

// ZipRegion truncates a postal code to its first three digits.
func (s *maskingService) ZipRegion(postalCode string) string {
	runes := []rune(postalCode)
	if len(runes) < 3 {
		return ZipRegionUnknown
	}
	return string(runes[:3])
}

func lastN(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
