package extraction

// Canonical document type values stored internally.
const (
	DocTypePassport      = "passeport"
	DocTypeDriverLicense = "permis_conduire"
	DocTypeNationalID    = "carte_identite"
	DocTypeVoterCard     = "carte_electeur"
	DocTypeOther         = "autre"
)

// docTypeAliases maps caller-supplied labels to canonical values. Canonical
// values map to themselves so the lookup is idempotent.
var docTypeAliases = map[string]string{
	"passport":           DocTypePassport,
	DocTypePassport:      DocTypePassport,
	"driver-license":     DocTypeDriverLicense,
	DocTypeDriverLicense: DocTypeDriverLicense,
	"national-id":        DocTypeNationalID,
	DocTypeNationalID:    DocTypeNationalID,
	"voter-card":         DocTypeVoterCard,
	DocTypeVoterCard:     DocTypeVoterCard,
}

// CanonicalDocType maps a document-type label to its canonical value.
// Unrecognized labels pass through verbatim.
func CanonicalDocType(label string) string {
	if canonical, ok := docTypeAliases[label]; ok {
		return canonical
	}
	return label
}
