package extraction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func strPtr(s string) *string { return &s }

func TestPGRawRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRawRepo{DB: db}
	rec := RawExtraction{
		ID:             "rec-1",
		UserID:         "user-1",
		Fields:         ExtractedFields{FirstName: strPtr("Jean")},
		ImageURL:       "http://files/passport.jpg",
		IDType:         "passeport",
		OriginalIDType: "passport",
		ExtractedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO id_extractions").
		WithArgs(
			rec.ID,
			rec.UserID,
			sqlmock.AnyArg(), // fields json
			rec.ImageURL,
			rec.IDType,
			rec.OriginalIDType,
			rec.ExtractedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), rec); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func profileRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"user_id", "id_type", "id_number", "issue_date", "expiry_date",
		"first_name", "last_name", "birth_date", "birth_place", "nationality",
		"country_of_residence", "permanent_address",
		"middle_name", "province_of_origin", "secondary_phone", "secondary_email",
		"created_at", "updated_at",
	})
}

func TestPGProfileRepoGetByUserIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGProfileRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM personal_data").
		WithArgs("user-1").
		WillReturnRows(profileRows())

	_, err = repo.GetByUserID(context.Background(), "user-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGProfileRepoGetByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	rows := profileRows().AddRow(
		"user-1", "passeport", "OP0123456", "2021-06-15", "2031-06-14",
		"Jean", "Kabila", "1985-03-02", "Kinshasa", "Congolaise (RDC)",
		"République Démocratique du Congo", "12 Avenue de la Paix",
		nil, nil, nil, nil,
		now, now,
	)

	repo := &PGProfileRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM personal_data").
		WithArgs("user-1").
		WillReturnRows(rows)

	p, err := repo.GetByUserID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if p.UserID != "user-1" || p.FirstName != "Jean" {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if p.MiddleName != nil {
		t.Fatalf("expected nil middle name, got %v", p.MiddleName)
	}
}

func TestPGProfileRepoInsertNullsAbsentOptionals(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	returned := profileRows().AddRow(
		"user-1", "autre", "", "2020-01-01", "2030-01-01",
		"Jean", "Kabila", "1985-03-02", "", "Congolaise (RDC)",
		"République Démocratique du Congo", "",
		nil, nil, nil, nil,
		now, now,
	)

	repo := &PGProfileRepo{DB: db}
	mock.ExpectQuery("INSERT INTO personal_data").
		WithArgs(
			"user-1", "autre", "", "2020-01-01", "2030-01-01",
			"Jean", "Kabila", "1985-03-02", "", "Congolaise (RDC)",
			"République Démocratique du Congo", "",
			nil, nil, nil, nil,
		).
		WillReturnRows(returned)

	p, err := repo.Insert(context.Background(), PersonalData{
		UserID:             "user-1",
		IDType:             "autre",
		IssueDate:          "2020-01-01",
		ExpiryDate:         "2030-01-01",
		FirstName:          "Jean",
		LastName:           "Kabila",
		BirthDate:          "1985-03-02",
		Nationality:        "Congolaise (RDC)",
		CountryOfResidence: "République Démocratique du Congo",
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if p.IDType != "autre" || p.FirstName != "Jean" {
		t.Fatalf("unexpected stored row: %+v", p)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGProfileRepoUpdateCoalescesOptionals(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	returned := profileRows().AddRow(
		"user-1", "autre", "", "2020-01-01", "2030-01-01",
		"", "", "1990-01-01", "", "Congolaise (RDC)",
		"République Démocratique du Congo", "",
		"Marie", nil, nil, nil,
		now, now,
	)

	repo := &PGProfileRepo{DB: db}
	mock.ExpectQuery("UPDATE personal_data SET").
		WithArgs(
			"user-1", "autre", "", "2020-01-01", "2030-01-01",
			"", "", "1990-01-01", "", "Congolaise (RDC)",
			"République Démocratique du Congo", "",
			"Marie", nil, nil, nil,
		).
		WillReturnRows(returned)

	p, err := repo.Update(context.Background(), PersonalData{
		UserID:             "user-1",
		IDType:             "autre",
		IssueDate:          "2020-01-01",
		ExpiryDate:         "2030-01-01",
		BirthDate:          "1990-01-01",
		Nationality:        "Congolaise (RDC)",
		CountryOfResidence: "République Démocratique du Congo",
		MiddleName:         strPtr("Marie"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.MiddleName == nil || *p.MiddleName != "Marie" {
		t.Fatalf("expected middle name Marie, got %v", p.MiddleName)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
