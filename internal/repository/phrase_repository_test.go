package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"speakprep/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// setupPhraseTestDB creates a new sqlx.DB instance and sqlmock for phrase repository testing.
func setupPhraseTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func phraseColumns() []string {
	return []string{"id", "user_id", "phrase", "context", "category", "is_mastered", "created_at"}
}

const (
	phraseOwnerID  = "01HUSER0000000000000000000"
	phraseRecordID = "01HPHRS0000000000000000000"
)

func TestSQLXPhraseRepository_Save_GeneratesIDAndDefaults(t *testing.T) {
	db, mock := setupPhraseTestDB(t)
	repo := NewSQLXPhraseRepository(db)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO saved_phrases \(id, user_id, phrase, context, category, is_mastered, created_at\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := repo.Save(context.Background(), &domain.SavedPhrase{
		UserID:   phraseOwnerID,
		Phrase:   "as a matter of fact",
		Category: "emphasis",
	})

	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, phraseOwnerID, saved.UserID)
	assert.False(t, saved.IsMastered)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXPhraseRepository_GetByID_ScopedToOwner(t *testing.T) {
	db, mock := setupPhraseTestDB(t)
	repo := NewSQLXPhraseRepository(db)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(phraseColumns()).
		AddRow(phraseRecordID, phraseOwnerID, "as a matter of fact", "", "emphasis", false, now)

	// The owner id rides along as a filter, not just the phrase id.
	mock.ExpectQuery(`FROM saved_phrases WHERE id = \$1 AND user_id = \$2`).
		WithArgs(phraseRecordID, phraseOwnerID).
		WillReturnRows(rows)

	phrase, err := repo.GetByID(context.Background(), phraseOwnerID, phraseRecordID)

	assert.NoError(t, err)
	assert.NotNil(t, phrase)
	assert.Equal(t, phraseRecordID, phrase.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXPhraseRepository_GetByID_ForeignOwnerIsNotFound(t *testing.T) {
	db, mock := setupPhraseTestDB(t)
	repo := NewSQLXPhraseRepository(db)
	defer db.Close()

	mock.ExpectQuery(`FROM saved_phrases WHERE id = \$1 AND user_id = \$2`).
		WithArgs(phraseRecordID, "01HOTHER000000000000000000").
		WillReturnError(sql.ErrNoRows)

	phrase, err := repo.GetByID(context.Background(), "01HOTHER000000000000000000", phraseRecordID)

	assert.NoError(t, err)
	assert.Nil(t, phrase)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXPhraseRepository_ListByUser_MostRecentFirst(t *testing.T) {
	db, mock := setupPhraseTestDB(t)
	repo := NewSQLXPhraseRepository(db)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(phraseColumns()).
		AddRow("01HPHRS0000000000000000002", phraseOwnerID, "in a nutshell", "", "", false, now).
		AddRow("01HPHRS0000000000000000001", phraseOwnerID, "by and large", "", "", true, now.Add(-time.Minute))

	mock.ExpectQuery(`FROM saved_phrases WHERE user_id = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs(phraseOwnerID).
		WillReturnRows(rows)

	phrases, err := repo.ListByUser(context.Background(), phraseOwnerID)

	assert.NoError(t, err)
	assert.Len(t, phrases, 2)
	assert.Equal(t, "in a nutshell", phrases[0].Phrase)
	assert.Equal(t, "by and large", phrases[1].Phrase)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXPhraseRepository_ListByUser_Empty(t *testing.T) {
	db, mock := setupPhraseTestDB(t)
	repo := NewSQLXPhraseRepository(db)
	defer db.Close()

	mock.ExpectQuery(`FROM saved_phrases WHERE user_id = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs(phraseOwnerID).
		WillReturnRows(sqlmock.NewRows(phraseColumns()))

	phrases, err := repo.ListByUser(context.Background(), phraseOwnerID)

	assert.NoError(t, err)
	assert.Empty(t, phrases)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXPhraseRepository_Delete_Semantics(t *testing.T) {
	db, mock := setupPhraseTestDB(t)
	repo := NewSQLXPhraseRepository(db)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM saved_phrases WHERE id = \$1 AND user_id = \$2`).
		WithArgs(phraseRecordID, phraseOwnerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM saved_phrases WHERE id = \$1 AND user_id = \$2`).
		WithArgs(phraseRecordID, phraseOwnerID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), phraseOwnerID, phraseRecordID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	// Second delete hits nothing and is not an error.
	deleted, err = repo.Delete(context.Background(), phraseOwnerID, phraseRecordID)
	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXPhraseRepository_SetMastered_ReturnsUpdatedRow(t *testing.T) {
	db, mock := setupPhraseTestDB(t)
	repo := NewSQLXPhraseRepository(db)
	defer db.Close()

	now := time.Now()
	mock.ExpectExec(`UPDATE saved_phrases SET is_mastered = \$1 WHERE id = \$2 AND user_id = \$3`).
		WithArgs(true, phraseRecordID, phraseOwnerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM saved_phrases WHERE id = \$1 AND user_id = \$2`).
		WithArgs(phraseRecordID, phraseOwnerID).
		WillReturnRows(sqlmock.NewRows(phraseColumns()).
			AddRow(phraseRecordID, phraseOwnerID, "as a matter of fact", "", "emphasis", true, now))

	phrase, err := repo.SetMastered(context.Background(), phraseOwnerID, phraseRecordID, true)

	assert.NoError(t, err)
	assert.NotNil(t, phrase)
	assert.True(t, phrase.IsMastered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXPhraseRepository_SetMastered_AbsentRowSkipsReselect(t *testing.T) {
	db, mock := setupPhraseTestDB(t)
	repo := NewSQLXPhraseRepository(db)
	defer db.Close()

	mock.ExpectExec(`UPDATE saved_phrases SET is_mastered = \$1 WHERE id = \$2 AND user_id = \$3`).
		WithArgs(false, phraseRecordID, phraseOwnerID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	phrase, err := repo.SetMastered(context.Background(), phraseOwnerID, phraseRecordID, false)

	assert.NoError(t, err)
	assert.Nil(t, phrase)
	assert.NoError(t, mock.ExpectationsWereMet())
}
