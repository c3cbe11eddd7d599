package court

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO courts (id,name) VALUES ($1,$2) RETURNING created_at")).
		WithArgs(sqlmock.AnyArg(), "Court 1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	court, err := repo.Create(context.Background(), &domain.Court{Name: "Court 1"})

	require.NoError(t, err)
	assert.NotEmpty(t, court.ID)
	assert.Equal(t, created, court.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateName(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO courts").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint \"courts_name_key\""})

	_, err := repo.Create(context.Background(), &domain.Court{Name: "Court 1"})

	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestUpdate_DuplicateName(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE courts SET name = $1 WHERE id = $2")).
		WithArgs("Court 2", "court-1").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value"})

	err := repo.Update(context.Background(), &domain.Court{ID: "court-1", Name: "Court 2"})

	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("UPDATE courts").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.Court{ID: "court-1", Name: "Court 2"})

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestDelete_OtherErrorsPassThrough(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM courts WHERE id = $1")).
		WithArgs("court-1").
		WillReturnError(&pq.Error{Code: "42501", Message: "permission denied for table courts"})

	err := repo.Delete(context.Background(), "court-1")

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NotErrorIs(t, err, ErrCourtNotFound)
	assert.Contains(t, err.Error(), "permission denied for table courts")
}

func TestList_OrderedByName(t *testing.T) {
	repo, mock := newRepo(t)
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, created_at FROM courts ORDER BY name ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow("c-1", "Alpha", created).
			AddRow("c-2", "Bravo", created))

	courts, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, courts, 2)
	assert.Equal(t, "Alpha", courts[0].Name)
	assert.Equal(t, "Bravo", courts[1].Name)
}
