package extraction

import "testing"

func TestRequiredProfileDefaultsTable(t *testing.T) {
	want := map[string]string{
		"id_type":              "autre",
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
	if len(RequiredProfileDefaults) != len(want) {
		t.Fatalf("expected %d defaults, got %d", len(want), len(RequiredProfileDefaults))
	}
	for column, def := range want {
		got, ok := RequiredProfileDefaults[column]
		if !ok {
			t.Fatalf("missing default for %s", column)
		}
		if got != def {
			t.Fatalf("default for %s = %q, want %q", column, got, def)
		}
	}
}

func TestBuildProfilePayloadDefaults(t *testing.T) {
	first := "Jean"
	last := "Kabila"
	birth := "1985-03-02"
	payload := buildProfilePayload("user-1", ExtractedFields{
		FirstName: &first,
		LastName:  &last,
		BirthDate: &birth,
	})

	if payload.UserID != "user-1" {
		t.Fatalf("expected user-1, got %s", payload.UserID)
	}
	if payload.IDType != "autre" {
		t.Fatalf("expected id_type autre, got %q", payload.IDType)
	}
	if payload.IDNumber != "" {
		t.Fatalf("expected empty id_number, got %q", payload.IDNumber)
	}
	if payload.Nationality != "Congolaise (RDC)" {
		t.Fatalf("expected default nationality, got %q", payload.Nationality)
	}
	if payload.CountryOfResidence != "République Démocratique du Congo" {
		t.Fatalf("expected default country, got %q", payload.CountryOfResidence)
	}
	if payload.FirstName != "Jean" || payload.LastName != "Kabila" || payload.BirthDate != "1985-03-02" {
		t.Fatalf("expected extracted name fields to win, got %+v", payload)
	}
	if payload.MiddleName != nil || payload.ProvinceOfOrigin != nil || payload.SecondaryPhone != nil || payload.SecondaryEmail != nil {
		t.Fatalf("expected all optional fields nil, got %+v", payload)
	}
}

func TestBuildProfilePayloadCanonicalizesDocType(t *testing.T) {
	docType := "passport"
	payload := buildProfilePayload("user-1", ExtractedFields{DocumentType: &docType})
	if payload.IDType != "passeport" {
		t.Fatalf("expected passeport, got %q", payload.IDType)
	}
}

func TestBuildProfilePayloadBlankValuesFallBack(t *testing.T) {
	blank := "   "
	payload := buildProfilePayload("user-1", ExtractedFields{
		IssueDate:  &blank,
		MiddleName: &blank,
	})
	if payload.IssueDate != "2020-01-01" {
		t.Fatalf("expected default issue_date for blank value, got %q", payload.IssueDate)
	}
	if payload.MiddleName != nil {
		t.Fatalf("expected nil middleName for blank value, got %q", *payload.MiddleName)
	}
}
