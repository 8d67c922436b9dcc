package extraction

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRawRepo implements RawRepo using Postgres.
type PGRawRepo struct {
	DB *sql.DB
}

// Upsert inserts or fully replaces the extraction row for the user.
func (r *PGRawRepo) Upsert(ctx context.Context, rec RawExtraction) error {
	const query = `
INSERT INTO id_extractions (id, user_id, fields, image_url, id_type, original_id_type, extracted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (user_id) DO UPDATE SET
  fields = EXCLUDED.fields,
  image_url = EXCLUDED.image_url,
  id_type = EXCLUDED.id_type,
  original_id_type = EXCLUDED.original_id_type,
  extracted_at = EXCLUDED.extracted_at`

	fieldsJSON, err := json.Marshal(rec.Fields)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		fieldsJSON,
		rec.ImageURL,
		rec.IDType,
		rec.OriginalIDType,
		rec.ExtractedAt,
	)
	return err
}

// PGProfileRepo implements ProfileRepo using Postgres.
type PGProfileRepo struct {
	DB *sql.DB
}

const profileColumns = `
user_id, id_type, id_number, issue_date, expiry_date,
first_name, last_name, birth_date, birth_place, nationality,
country_of_residence, permanent_address,
middle_name, province_of_origin, secondary_phone, secondary_email,
created_at, updated_at`

// GetByUserID returns the profile row for the user, or ErrNotFound.
func (r *PGProfileRepo) GetByUserID(ctx context.Context, userID string) (PersonalData, error) {
	query := `SELECT ` + profileColumns + `
FROM personal_data
WHERE user_id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, userID)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PersonalData{}, ErrNotFound
		}
		return PersonalData{}, err
	}
	return p, nil
}

// Insert creates the profile row and returns it as stored.
func (r *PGProfileRepo) Insert(ctx context.Context, p PersonalData) (PersonalData, error) {
	query := `
INSERT INTO personal_data (
    user_id, id_type, id_number, issue_date, expiry_date,
    first_name, last_name, birth_date, birth_place, nationality,
    country_of_residence, permanent_address,
    middle_name, province_of_origin, secondary_phone, secondary_email,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, now(), now())
RETURNING ` + profileColumns
	row := r.DB.QueryRowContext(ctx, query,
		p.UserID,
		p.IDType,
		p.IDNumber,
		p.IssueDate,
		p.ExpiryDate,
		p.FirstName,
		p.LastName,
		p.BirthDate,
		p.BirthPlace,
		p.Nationality,
		p.CountryOfResidence,
		p.PermanentAddress,
		nullableString(p.MiddleName),
		nullableString(p.ProvinceOfOrigin),
		nullableString(p.SecondaryPhone),
		nullableString(p.SecondaryEmail),
	)
	return scanProfile(row)
}

// Update overwrites required fields and merges optional fields, leaving an
// optional column untouched when the payload carries no value for it.
func (r *PGProfileRepo) Update(ctx context.Context, p PersonalData) (PersonalData, error) {
	query := `
UPDATE personal_data SET
  id_type = $2,
  id_number = $3,
  issue_date = $4,
  expiry_date = $5,
  first_name = $6,
  last_name = $7,
  birth_date = $8,
  birth_place = $9,
  nationality = $10,
  country_of_residence = $11,
  permanent_address = $12,
  middle_name = COALESCE($13, middle_name),
  province_of_origin = COALESCE($14, province_of_origin),
  secondary_phone = COALESCE($15, secondary_phone),
  secondary_email = COALESCE($16, secondary_email),
  updated_at = now()
WHERE user_id = $1
RETURNING ` + profileColumns
	row := r.DB.QueryRowContext(ctx, query,
		p.UserID,
		p.IDType,
		p.IDNumber,
		p.IssueDate,
		p.ExpiryDate,
		p.FirstName,
		p.LastName,
		p.BirthDate,
		p.BirthPlace,
		p.Nationality,
		p.CountryOfResidence,
		p.PermanentAddress,
		nullableString(p.MiddleName),
		nullableString(p.ProvinceOfOrigin),
		nullableString(p.SecondaryPhone),
		nullableString(p.SecondaryEmail),
	)
	return scanProfile(row)
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (PersonalData, error) {
	var p PersonalData
	var middleName, provinceOfOrigin, secondaryPhone, secondaryEmail sql.NullString
	err := row.Scan(
		&p.UserID,
		&p.IDType,
		&p.IDNumber,
		&p.IssueDate,
		&p.ExpiryDate,
		&p.FirstName,
		&p.LastName,
		&p.BirthDate,
		&p.BirthPlace,
		&p.Nationality,
		&p.CountryOfResidence,
		&p.PermanentAddress,
		&middleName,
		&provinceOfOrigin,
		&secondaryPhone,
		&secondaryEmail,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return PersonalData{}, err
	}
	if middleName.Valid {
		p.MiddleName = &middleName.String
	}
	if provinceOfOrigin.Valid {
		p.ProvinceOfOrigin = &provinceOfOrigin.String
	}
	if secondaryPhone.Valid {
		p.SecondaryPhone = &secondaryPhone.String
	}
	if secondaryEmail.Valid {
		p.SecondaryEmail = &secondaryEmail.String
	}
	return p, nil
}

func nullableString(value *string) any {
	if value == nil || *value == "" {
		return nil
	}
	return *value
}
