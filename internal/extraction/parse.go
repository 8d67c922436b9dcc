package extraction

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

var fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ParseFields interprets the inference API's textual response as an
// ExtractedFields object. The response may be the JSON object directly or
// carry it inside a ```json (or plain ```) fenced block.
func ParseFields(raw string) (ExtractedFields, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ExtractedFields{}, &ParseError{Detail: "empty response"}
	}

	if fields, err := decodeFields([]byte(trimmed)); err == nil {
		return fields, nil
	}

	if m := fencedBlockRe.FindStringSubmatch(trimmed); m != nil {
		if fields, err := decodeFields([]byte(m[1])); err == nil {
			return fields, nil
		}
	}

	return ExtractedFields{}, &ParseError{Detail: "response is neither JSON nor a fenced JSON block"}
}

func decodeFields(data []byte) (ExtractedFields, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return ExtractedFields{}, err
	}

	var fields ExtractedFields
	residual := map[string]any{}
	for key, value := range m {
		switch key {
		case "documentType":
			fields.DocumentType = asStringPtr(value)
		case "documentNumber":
			fields.DocumentNumber = asStringPtr(value)
		case "issueDate":
			fields.IssueDate = asStringPtr(value)
		case "expiryDate":
			fields.ExpiryDate = asStringPtr(value)
		case "firstName":
			fields.FirstName = asStringPtr(value)
		case "middleName":
			fields.MiddleName = asStringPtr(value)
		case "lastName":
			fields.LastName = asStringPtr(value)
		case "birthDate":
			fields.BirthDate = asStringPtr(value)
		case "birthPlace":
			fields.BirthPlace = asStringPtr(value)
		case "nationality":
			fields.Nationality = asStringPtr(value)
		case "provinceOfOrigin":
			fields.ProvinceOfOrigin = asStringPtr(value)
		case "gender":
			fields.Gender = asStringPtr(value)
		case "address":
			fields.Address = asStringPtr(value)
		case "city":
			fields.City = asStringPtr(value)
		case "province":
			fields.Province = asStringPtr(value)
		case "country":
			fields.Country = asStringPtr(value)
		case "phone":
			fields.Phone = asStringPtr(value)
		case "email":
			fields.Email = asStringPtr(value)
		case "rawData":
			if obj, ok := value.(map[string]any); ok {
				for rk, rv := range obj {
					residual[rk] = rv
				}
			}
		default:
			if value != nil {
				residual[key] = value
			}
		}
	}
	if len(residual) > 0 {
		fields.RawData = residual
	}
	return fields, nil
}

// asStringPtr converts scalar JSON values to a string pointer; null and
// structured values yield nil.
func asStringPtr(v any) *string {
	switch t := v.(type) {
	case string:
		return &t
	case json.Number:
		s := t.String()
		return &s
	case bool:
		s := "false"
		if t {
			s = "true"
		}
		return &s
	default:
		return nil
	}
}
