package postgresql

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpeg-app/simpeg-backend-go/internal/domain/recruitment"
)

func TestRecruitmentRepository_IncrementCounter(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewRecruitmentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("SET pending = pending + 1")).
		WithArgs(pgxmock.AnyArg(), "rec-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.IncrementCounter(context.Background(), "rec-1", recruitment.StatusPending)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecruitmentRepository_IncrementCounter_UnknownRecruitment(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewRecruitmentRepository(db)

	mock.ExpectExec("UPDATE recruitments").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.IncrementCounter(context.Background(), "missing", recruitment.StatusPending)
	assert.ErrorIs(t, err, recruitment.ErrRecruitmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecruitmentRepository_IncrementCounter_InvalidBucket(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewRecruitmentRepository(db)

	// No SQL may run for an unrecognized bucket.
	err := repo.IncrementCounter(context.Background(), "rec-1", recruitment.CandidateStatus("shortlisted"))
	assert.ErrorIs(t, err, recruitment.ErrInvalidStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecruitmentRepository_MoveCounter(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewRecruitmentRepository(db)

	// Both buckets move in one statement.
	mock.ExpectExec(regexp.QuoteMeta("SET pending = pending - 1, accepted = accepted + 1")).
		WithArgs(pgxmock.AnyArg(), "rec-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.MoveCounter(context.Background(), "rec-1", recruitment.StatusPending, recruitment.StatusAccepted)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecruitmentRepository_MoveCounter_SameBucketNoOp(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewRecruitmentRepository(db)

	err := repo.MoveCounter(context.Background(), "rec-1", recruitment.StatusPending, recruitment.StatusPending)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecruitmentRepository_SetCounters(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewRecruitmentRepository(db)

	mock.ExpectExec("UPDATE recruitments").
		WithArgs(2, 1, 0, 3, pgxmock.AnyArg(), "rec-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetCounters(context.Background(), "rec-1", map[recruitment.CandidateStatus]int{
		recruitment.StatusPending:  2,
		recruitment.StatusAccepted: 1,
		recruitment.StatusHired:    3,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecruitmentRepository_Delete_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewRecruitmentRepository(db)

	mock.ExpectExec("DELETE FROM recruitments").
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, recruitment.ErrRecruitmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
