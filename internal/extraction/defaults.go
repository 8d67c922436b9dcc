package extraction

import "strings"

// RequiredProfileDefaults maps each required personal-data column to the
// value stored when extraction did not yield one. Kept as a single table so
// the defaulting policy can be asserted against directly.
var RequiredProfileDefaults = map[string]string{
	"id_type":              DocTypeOther,
	"id_number":            "",
	"issue_date":           "2020-01-01",
	"expiry_date":          "2030-01-01",
	"first_name":           "",
	"last_name":            "",
	"birth_date":           "1990-01-01",
	"birth_place":          "",
	"nationality":          "Congolaise (RDC)",
	"country_of_residence": "République Démocratique du Congo",
	"permanent_address":    "",
}

// buildProfilePayload derives the personal-data write payload from extracted
// fields. Required fields fall back to RequiredProfileDefaults; optional
// fields stay nil unless extraction produced a non-empty value.
func buildProfilePayload(userID string, fields ExtractedFields) PersonalData {
	idType := RequiredProfileDefaults["id_type"]
	if present(fields.DocumentType) {
		idType = CanonicalDocType(*fields.DocumentType)
	}

	return PersonalData{
		UserID:             userID,
		IDType:             idType,
		IDNumber:           requiredValue(fields.DocumentNumber, "id_number"),
		IssueDate:          requiredValue(fields.IssueDate, "issue_date"),
		ExpiryDate:         requiredValue(fields.ExpiryDate, "expiry_date"),
		FirstName:          requiredValue(fields.FirstName, "first_name"),
		LastName:           requiredValue(fields.LastName, "last_name"),
		BirthDate:          requiredValue(fields.BirthDate, "birth_date"),
		BirthPlace:         requiredValue(fields.BirthPlace, "birth_place"),
		Nationality:        requiredValue(fields.Nationality, "nationality"),
		CountryOfResidence: requiredValue(fields.Country, "country_of_residence"),
		PermanentAddress:   requiredValue(fields.Address, "permanent_address"),
		MiddleName:         optionalValue(fields.MiddleName),
		ProvinceOfOrigin:   optionalValue(fields.ProvinceOfOrigin),
		SecondaryPhone:     optionalValue(fields.Phone),
		SecondaryEmail:     optionalValue(fields.Email),
	}
}

func requiredValue(v *string, column string) string {
	if present(v) {
		return *v
	}
	return RequiredProfileDefaults[column]
}

func optionalValue(v *string) *string {
	if present(v) {
		return v
	}
	return nil
}

func present(v *string) bool {
	return v != nil && strings.TrimSpace(*v) != ""
}
