package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpeg-app/simpeg-backend-go/internal/domain/recruitment"
)

func candidateRow() *pgxmock.Rows {
	name := "Jane"
	position := "Backend Engineer"
	return pgxmock.NewRows([]string{
		"id", "user_id", "recruitment_id", "status", "applied_at", "is_active", "comment",
		"user_name", "position_name",
	}).AddRow(
		"cand-1", "user-1", "rec-1", recruitment.StatusAccepted, time.Now(), true, "",
		&name, &position,
	)
}

func TestCandidateRepository_UpdateStatus_GuardsOnOldStatus(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewCandidateRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $4 AND status = $5")).
		WithArgs(recruitment.StatusAccepted, pgxmock.AnyArg(), pgxmock.AnyArg(), "cand-1", recruitment.StatusPending).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("cand-1"))
	mock.ExpectQuery("SELECT c.id").
		WithArgs("cand-1").
		WillReturnRows(candidateRow())

	updated, err := repo.UpdateStatus(context.Background(), "cand-1", recruitment.StatusPending, recruitment.StatusAccepted, nil)
	require.NoError(t, err)
	assert.Equal(t, recruitment.StatusAccepted, updated.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateRepository_UpdateStatus_StaleStatusConflicts(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewCandidateRepository(db)

	// The guarded write misses because the row no longer holds the
	// status this caller read; the follow-up read finds the row, so
	// the miss is a concurrent change rather than a deletion.
	mock.ExpectQuery("UPDATE candidates").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT c.id").
		WithArgs("cand-1").
		WillReturnRows(candidateRow())

	_, err := repo.UpdateStatus(context.Background(), "cand-1", recruitment.StatusPending, recruitment.StatusRejected, nil)
	assert.ErrorIs(t, err, recruitment.ErrStatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateRepository_UpdateStatus_MissingCandidate(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewCandidateRepository(db)

	mock.ExpectQuery("UPDATE candidates").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT c.id").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "recruitment_id", "status", "applied_at", "is_active", "comment",
			"user_name", "position_name",
		}))

	_, err := repo.UpdateStatus(context.Background(), "missing", recruitment.StatusPending, recruitment.StatusRejected, nil)
	assert.ErrorIs(t, err, recruitment.ErrCandidateNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
