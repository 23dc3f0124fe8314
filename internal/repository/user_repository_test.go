package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"speakprep/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// setupUserTestDB creates a new sqlx.DB instance and sqlmock for user repository testing.
func setupUserTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func userColumns() []string {
	return []string{"id", "user_identifier", "created_at"}
}

func TestToDomainUser(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	modelUser := &models.User{
		ID:             "01HUSER0000000000000000000",
		UserIdentifier: "device-abc",
		CreatedAt:      now,
	}

	domainUser := toDomainUser(modelUser)
	assert.NotNil(t, domainUser)
	assert.Equal(t, modelUser.ID, domainUser.ID)
	assert.Equal(t, modelUser.UserIdentifier, domainUser.UserIdentifier)
	assert.True(t, modelUser.CreatedAt.Equal(domainUser.CreatedAt))

	assert.Nil(t, toDomainUser(nil))
}

func TestSQLXUserRepository_GetByIdentifier_Success(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userColumns()).
		AddRow("01HUSER0000000000000000000", "device-abc", now)

	mock.ExpectQuery(`SELECT id, user_identifier, created_at FROM users WHERE user_identifier = \$1`).
		WithArgs("device-abc").
		WillReturnRows(rows)

	user, err := repo.GetByIdentifier(context.Background(), "device-abc")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "01HUSER0000000000000000000", user.ID)
	assert.Equal(t, "device-abc", user.UserIdentifier)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_GetByIdentifier_NotFound(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, user_identifier, created_at FROM users WHERE user_identifier = \$1`).
		WithArgs("never-seen").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByIdentifier(context.Background(), "never-seen")

	assert.NoError(t, err, "Expected no error from adapter when record not found")
	assert.Nil(t, user, "Expected nil user for not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_CreateOrGetByIdentifier_ExistingUser(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userColumns()).
		AddRow("01HUSER0000000000000000000", "device-abc", now)

	// An existing user short-circuits: no insert.
	mock.ExpectQuery(`SELECT id, user_identifier, created_at FROM users WHERE user_identifier = \$1`).
		WithArgs("device-abc").
		WillReturnRows(rows)

	user, err := repo.CreateOrGetByIdentifier(context.Background(), "device-abc")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "01HUSER0000000000000000000", user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_CreateOrGetByIdentifier_NewUser(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	now := time.Now()

	// First lookup misses, the upsert runs, the re-select returns the row.
	mock.ExpectQuery(`SELECT id, user_identifier, created_at FROM users WHERE user_identifier = \$1`).
		WithArgs("device-new").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(`INSERT INTO users \(id, user_identifier, created_at\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT id, user_identifier, created_at FROM users WHERE user_identifier = \$1`).
		WithArgs("device-new").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("01HUSER0000000000000000001", "device-new", now))

	user, err := repo.CreateOrGetByIdentifier(context.Background(), "device-new")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "01HUSER0000000000000000001", user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_CreateOrGetByIdentifier_LostRaceReturnsWinner(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	now := time.Now()

	// The conflict clause swallows our insert; the re-select yields the row
	// a concurrent first login created.
	mock.ExpectQuery(`SELECT id, user_identifier, created_at FROM users WHERE user_identifier = \$1`).
		WithArgs("device-racy").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(`INSERT INTO users \(id, user_identifier, created_at\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT id, user_identifier, created_at FROM users WHERE user_identifier = \$1`).
		WithArgs("device-racy").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("01HWINNER00000000000000000", "device-racy", now))

	user, err := repo.CreateOrGetByIdentifier(context.Background(), "device-racy")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "01HWINNER00000000000000000", user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, user_identifier, created_at FROM users WHERE id = \$1`).
		WithArgs("01HABSENT00000000000000000").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByID(context.Background(), "01HABSENT00000000000000000")

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
