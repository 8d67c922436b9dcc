package extraction

import "time"

// ExtractedFields holds the structured identity fields read from a document
// image. Every named field is optional; absence is an explicit null so that
// downstream defaulting has a uniform contract. Anything the model read that
// does not fit a named field lands in RawData.
type ExtractedFields struct {
	DocumentType     *string        `json:"documentType"`
	DocumentNumber   *string        `json:"documentNumber"`
	IssueDate        *string        `json:"issueDate"`
	ExpiryDate       *string        `json:"expiryDate"`
	FirstName        *string        `json:"firstName"`
	MiddleName       *string        `json:"middleName"`
	LastName         *string        `json:"lastName"`
	BirthDate        *string        `json:"birthDate"`
	BirthPlace       *string        `json:"birthPlace"`
	Nationality      *string        `json:"nationality"`
	ProvinceOfOrigin *string        `json:"provinceOfOrigin"`
	Gender           *string        `json:"gender"`
	Address          *string        `json:"address"`
	City             *string        `json:"city"`
	Province         *string        `json:"province"`
	Country          *string        `json:"country"`
	Phone            *string        `json:"phone"`
	Email            *string        `json:"email"`
	RawData          map[string]any `json:"rawData"`
}

// RawExtraction is the full extraction payload persisted per user. One row
// per user; a new extraction replaces the prior one entirely.
type RawExtraction struct {
	ID             string
	UserID         string
	Fields         ExtractedFields
	ImageURL       string
	IDType         string
	OriginalIDType string
	ExtractedAt    time.Time
}

// PersonalData is the canonical per-user profile derived from extraction.
// Required fields are never stored as null; optional fields are pointers and
// a nil value means "leave the stored value untouched" on update.
type PersonalData struct {
	UserID             string    `json:"userId"`
	IDType             string    `json:"idType"`
	IDNumber           string    `json:"idNumber"`
	IssueDate          string    `json:"issueDate"`
	ExpiryDate         string    `json:"expiryDate"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	BirthDate          string    `json:"birthDate"`
	BirthPlace         string    `json:"birthPlace"`
	Nationality        string    `json:"nationality"`
	CountryOfResidence string    `json:"countryOfResidence"`
	PermanentAddress   string    `json:"permanentAddress"`
	MiddleName         *string   `json:"middleName,omitempty"`
	ProvinceOfOrigin   *string   `json:"provinceOfOrigin,omitempty"`
	SecondaryPhone     *string   `json:"secondaryPhone,omitempty"`
	SecondaryEmail     *string   `json:"secondaryEmail,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
