package recruitment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpeg-app/simpeg-backend-go/internal/domain/recruitment"
	"github.com/simpeg-app/simpeg-backend-go/internal/domain/user"
)

// ---- in-memory fakes ----

type fakeRecruitmentRepo struct {
	recruitments map[string]recruitment.Recruitment
}

func newFakeRecruitmentRepo() *fakeRecruitmentRepo {
	return &fakeRecruitmentRepo{recruitments: make(map[string]recruitment.Recruitment)}
}

func (f *fakeRecruitmentRepo) Create(ctx context.Context, r recruitment.Recruitment) (recruitment.Recruitment, error) {
	r.ID = fmt.Sprintf("rec-%d", len(f.recruitments)+1)
	f.recruitments[r.ID] = r
	return r, nil
}

func (f *fakeRecruitmentRepo) GetByID(ctx context.Context, id string) (recruitment.Recruitment, error) {
	r, ok := f.recruitments[id]
	if !ok {
		return recruitment.Recruitment{}, recruitment.ErrRecruitmentNotFound
	}
	return r, nil
}

func (f *fakeRecruitmentRepo) List(ctx context.Context, filter recruitment.RecruitmentFilter) ([]recruitment.Recruitment, error) {
	var out []recruitment.Recruitment
	for _, r := range f.recruitments {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRecruitmentRepo) Update(ctx context.Context, req recruitment.UpdateRecruitmentRequest) (recruitment.Recruitment, error) {
	r, ok := f.recruitments[req.ID]
	if !ok {
		return recruitment.Recruitment{}, recruitment.ErrRecruitmentNotFound
	}
	if req.Title != nil {
		r.Title = *req.Title
	}
	if req.Status != nil {
		r.Status = *req.Status
	}
	if req.IsActive != nil {
		r.IsActive = *req.IsActive
	}
	f.recruitments[req.ID] = r
	return r, nil
}

func (f *fakeRecruitmentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.recruitments[id]; !ok {
		return recruitment.ErrRecruitmentNotFound
	}
	delete(f.recruitments, id)
	return nil
}

func (f *fakeRecruitmentRepo) IncrementCounter(ctx context.Context, id string, bucket recruitment.CandidateStatus) error {
	r, ok := f.recruitments[id]
	if !ok {
		return recruitment.ErrRecruitmentNotFound
	}
	switch bucket {
	case recruitment.StatusPending:
		r.Pending++
	case recruitment.StatusAccepted:
		r.Accepted++
	case recruitment.StatusRejected:
		r.Rejected++
	case recruitment.StatusHired:
		r.Hired++
	default:
		return recruitment.ErrInvalidStatus
	}
	f.recruitments[id] = r
	return nil
}

func (f *fakeRecruitmentRepo) MoveCounter(ctx context.Context, id string, from, to recruitment.CandidateStatus) error {
	if from == to {
		return nil
	}
	r, ok := f.recruitments[id]
	if !ok {
		return recruitment.ErrRecruitmentNotFound
	}
	dec := func(bucket recruitment.CandidateStatus) error {
		switch bucket {
		case recruitment.StatusPending:
			r.Pending--
		case recruitment.StatusAccepted:
			r.Accepted--
		case recruitment.StatusRejected:
			r.Rejected--
		case recruitment.StatusHired:
			r.Hired--
		default:
			return recruitment.ErrInvalidStatus
		}
		return nil
	}
	inc := func(bucket recruitment.CandidateStatus) error {
		switch bucket {
		case recruitment.StatusPending:
			r.Pending++
		case recruitment.StatusAccepted:
			r.Accepted++
		case recruitment.StatusRejected:
			r.Rejected++
		case recruitment.StatusHired:
			r.Hired++
		default:
			return recruitment.ErrInvalidStatus
		}
		return nil
	}
	if err := dec(from); err != nil {
		return err
	}
	if err := inc(to); err != nil {
		return err
	}
	f.recruitments[id] = r
	return nil
}

func (f *fakeRecruitmentRepo) SetCounters(ctx context.Context, id string, counts map[recruitment.CandidateStatus]int) error {
	r, ok := f.recruitments[id]
	if !ok {
		return recruitment.ErrRecruitmentNotFound
	}
	r.Pending = counts[recruitment.StatusPending]
	r.Accepted = counts[recruitment.StatusAccepted]
	r.Rejected = counts[recruitment.StatusRejected]
	r.Hired = counts[recruitment.StatusHired]
	f.recruitments[id] = r
	return nil
}

type fakeCandidateRepo struct {
	candidates map[string]recruitment.Candidate

	// beforeUpdate runs at the top of UpdateStatus. Tests use it to
	// commit a competing write between the service's read and its write.
	beforeUpdate func()
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{candidates: make(map[string]recruitment.Candidate)}
}

func (f *fakeCandidateRepo) Create(ctx context.Context, c recruitment.Candidate) (recruitment.Candidate, error) {
	for _, existing := range f.candidates {
		if existing.UserID == c.UserID && existing.RecruitmentID == c.RecruitmentID {
			return recruitment.Candidate{}, recruitment.ErrAlreadyApplied
		}
	}
	c.ID = fmt.Sprintf("cand-%d", len(f.candidates)+1)
	c.AppliedAt = time.Now()
	f.candidates[c.ID] = c
	return c, nil
}

func (f *fakeCandidateRepo) GetByID(ctx context.Context, id string) (recruitment.Candidate, error) {
	c, ok := f.candidates[id]
	if !ok {
		return recruitment.Candidate{}, recruitment.ErrCandidateNotFound
	}
	return c, nil
}

func (f *fakeCandidateRepo) GetByUserAndRecruitment(ctx context.Context, userID, recruitmentID string) (*recruitment.Candidate, error) {
	for _, c := range f.candidates {
		if c.UserID == userID && c.RecruitmentID == recruitmentID {
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCandidateRepo) ListByRecruitment(ctx context.Context, recruitmentID string, status *recruitment.CandidateStatus) ([]recruitment.Candidate, error) {
	var out []recruitment.Candidate
	for _, c := range f.candidates {
		if c.RecruitmentID != recruitmentID {
			continue
		}
		if status != nil && c.Status != *status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCandidateRepo) List(ctx context.Context, filter recruitment.CandidateFilter) ([]recruitment.Candidate, error) {
	var out []recruitment.Candidate
	for _, c := range f.candidates {
		if filter.Status != nil && string(c.Status) != *filter.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCandidateRepo) UpdateStatus(ctx context.Context, id string, from, to recruitment.CandidateStatus, comment *string) (recruitment.Candidate, error) {
	if f.beforeUpdate != nil {
		f.beforeUpdate()
	}
	c, ok := f.candidates[id]
	if !ok {
		return recruitment.Candidate{}, recruitment.ErrCandidateNotFound
	}
	if c.Status != from {
		return recruitment.Candidate{}, recruitment.ErrStatusConflict
	}
	c.Status = to
	if comment != nil {
		c.Comment = *comment
	}
	f.candidates[id] = c
	return c, nil
}

func (f *fakeCandidateRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.candidates[id]; !ok {
		return recruitment.ErrCandidateNotFound
	}
	delete(f.candidates, id)
	return nil
}

func (f *fakeCandidateRepo) CountByStatus(ctx context.Context, recruitmentID string) (map[recruitment.CandidateStatus]int, error) {
	counts := map[recruitment.CandidateStatus]int{
		recruitment.StatusPending:  0,
		recruitment.StatusAccepted: 0,
		recruitment.StatusRejected: 0,
		recruitment.StatusHired:    0,
	}
	for _, c := range f.candidates {
		if c.RecruitmentID == recruitmentID {
			counts[c.Status]++
		}
	}
	return counts, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByNIK(ctx context.Context, nik string) (user.User, error) {
	for _, u := range f.users {
		if u.NIK == nik {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, filter user.UserFilter) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id string, role user.Role) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Role = role
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) Deactivate(ctx context.Context, id string) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.IsActive = false
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// ---- helpers ----

type fixture struct {
	svc      recruitment.RecruitmentService
	recRepo  *fakeRecruitmentRepo
	candRepo *fakeCandidateRepo
	userRepo *fakeUserRepo
}

func newFixture() *fixture {
	recRepo := newFakeRecruitmentRepo()
	candRepo := newFakeCandidateRepo()
	userRepo := newFakeUserRepo()
	return &fixture{
		svc:      NewRecruitmentService(recRepo, candRepo, userRepo, passthroughTx{}),
		recRepo:  recRepo,
		candRepo: candRepo,
		userRepo: userRepo,
	}
}

func (f *fixture) addRecruitment() string {
	rec, _ := f.recRepo.Create(context.Background(), recruitment.Recruitment{
		Title:     "Backend Engineer",
		Status:    "open",
		ExpiredAt: time.Now().AddDate(0, 1, 0),
		IsActive:  true,
	})
	return rec.ID
}

func (f *fixture) addUser(id string, role user.Role) {
	f.userRepo.users[id] = user.User{ID: id, Role: role, IsActive: true}
}

func (f *fixture) counterTotal(t *testing.T, recID string) (int, recruitment.Recruitment) {
	t.Helper()
	rec, err := f.recRepo.GetByID(context.Background(), recID)
	require.NoError(t, err)
	return rec.CandidateTotal(), rec
}

// ---- tests ----

func TestApply_CreatesPendingCandidateAndBumpsCounter(t *testing.T) {
	f := newFixture()
	recID := f.addRecruitment()
	f.addUser("user-1", user.RoleGuest)

	resp, err := f.svc.Apply(context.Background(), "user-1", recID)
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)

	total, rec := f.counterTotal(t, recID)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, rec.Pending)

	// Applying flips the user's role
	u, err := f.userRepo.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, user.RoleCandidate, u.Role)
}

func TestApply_DuplicateApplicationConflicts(t *testing.T) {
	f := newFixture()
	recID := f.addRecruitment()
	f.addUser("user-1", user.RoleGuest)

	_, err := f.svc.Apply(context.Background(), "user-1", recID)
	require.NoError(t, err)

	_, err = f.svc.Apply(context.Background(), "user-1", recID)
	assert.ErrorIs(t, err, recruitment.ErrAlreadyApplied)

	// The failed second application must not disturb the counters
	total, _ := f.counterTotal(t, recID)
	assert.Equal(t, 1, total)
}

func TestApply_EmployeeRejected(t *testing.T) {
	f := newFixture()
	recID := f.addRecruitment()
	f.addUser("user-1", user.RoleEmployee)

	_, err := f.svc.Apply(context.Background(), "user-1", recID)
	assert.ErrorIs(t, err, recruitment.ErrAlreadyEmployed)
}

func TestApply_InactiveRecruitmentRejected(t *testing.T) {
	f := newFixture()
	recID := f.addRecruitment()
	rec := f.recRepo.recruitments[recID]
	rec.IsActive = false
	f.recRepo.recruitments[recID] = rec
	f.addUser("user-1", user.RoleGuest)

	_, err := f.svc.Apply(context.Background(), "user-1", recID)
	assert.ErrorIs(t, err, recruitment.ErrRecruitmentClosed)
}

func TestTransition_ConservesCounterTotal(t *testing.T) {
	f := newFixture()
	recID := f.addRecruitment()
	f.addUser("user-1", user.RoleGuest)
	f.addUser("user-2", user.RoleGuest)

	resp1, err := f.svc.Apply(context.Background(), "user-1", recID)
	require.NoError(t, err)
	_, err = f.svc.Apply(context.Background(), "user-2", recID)
	require.NoError(t, err)

	totalBefore, _ := f.counterTotal(t, recID)
	require.Equal(t, 2, totalBefore)

	_, err = f.svc.Transition(context.Background(), recruitment.TransitionRequest{
		CandidateID: resp1.ID,
		Status:      "accepted",
	})
	require.NoError(t, err)

	total, rec := f.counterTotal(t, recID)
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, rec.Pending)
	assert.Equal(t, 1, rec.Accepted)
}

func TestTransition_StaleReadConflicts(t *testing.T) {
	f := newFixture()
	recID := f.addRecruitment()
	f.addUser("user-1", user.RoleGuest)

	resp, err := f.svc.Apply(context.Background(), "user-1", recID)
	require.NoError(t, err)

	// A competing admin commits pending -> accepted between this
	// transition's read and its guarded write.
	f.candRepo.beforeUpdate = func() {
		c := f.candRepo.candidates[resp.ID]
		c.Status = recruitment.StatusAccepted
		f.candRepo.candidates[resp.ID] = c
		require.NoError(t, f.recRepo.MoveCounter(context.Background(), recID, recruitment.StatusPending, recruitment.StatusAccepted))
	}

	_, err = f.svc.Transition(context.Background(), recruitment.TransitionRequest{
		CandidateID: resp.ID,
		Status:      "rejected",
	})
	require.ErrorIs(t, err, recruitment.ErrStatusConflict)

	// Only the competing write landed: the loser moved nothing.
	total, rec := f.counterTotal(t, recID)
	assert.Equal(t, 1, total)
	assert.Equal(t, 0, rec.Pending)
	assert.Equal(t, 1, rec.Accepted)
	assert.Equal(t, 0, rec.Rejected)
	assert.Equal(t, recruitment.StatusAccepted, f.candRepo.candidates[resp.ID].Status)
}

func TestTransition_SameStatusIsNoOp(t *testing.T) {
	f := newFixture()
	recID := f.addRecruitment()
	f.addUser("user-1", user.RoleGuest)

	resp, err := f.svc.Apply(context.Background(), "user-1", recID)
	require.NoError(t, err)

	_, err = f.svc.Transition(context.Background(), recruitment.TransitionRequest{
		CandidateID: resp.ID,
		Status:      "pending",
	})
	require.NoError(t, err)

	total, rec := f.counterTotal(t, recID)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, rec.Pending)
}

func TestTransition_RejectedDeactivatesUser(t *testing.T) {
	f := newFixture()
	recID := f.addRecruitment()
	f.addUser("user-1", user.RoleGuest)

	resp, err := f.svc.Apply(context.Background(), "user-1", recID)
	require.NoError(t, err)

	_, err = f.svc.Transition(context.Background(), recruitment.TransitionRequest{
		CandidateID: resp.ID,
		Status:      "rejected",
	})
	require.NoError(t, err)

	u, err := f.userRepo.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, u.IsActive)

	total, rec := f.counterTotal(t, recID)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, rec.Rejected)
	assert.Equal(t, 0, rec.Pending)
}

func TestTransition_UnknownStatusFailsLoudly(t *testing.T) {
	f := newFixture()
	recID := f.addRecruitment()
	f.addUser("user-1", user.RoleGuest)

	resp, err := f.svc.Apply(context.Background(), "user-1", recID)
	require.NoError(t, err)

	_, err = f.svc.Transition(context.Background(), recruitment.TransitionRequest{
		CandidateID: resp.ID,
		Status:      "shortlisted",
	})
	assert.Error(t, err)

	// Counters untouched by the failed transition
	total, rec := f.counterTotal(t, recID)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, rec.Pending)
}

func TestTransitionByUser_ResolvesCandidate(t *testing.T) {
	f := newFixture()
	recID := f.addRecruitment()
	f.addUser("user-1", user.RoleGuest)

	_, err := f.svc.Apply(context.Background(), "user-1", recID)
	require.NoError(t, err)

	resp, err := f.svc.TransitionByUser(context.Background(), recID, "user-1", recruitment.TransitionRequest{
		Status: "hired",
	})
	require.NoError(t, err)
	assert.Equal(t, "hired", resp.Status)

	_, rec := f.counterTotal(t, recID)
	assert.Equal(t, 1, rec.Hired)
}

func TestTransitionByUser_UnknownPairNotFound(t *testing.T) {
	f := newFixture()
	recID := f.addRecruitment()
	f.addUser("user-1", user.RoleGuest)

	_, err := f.svc.TransitionByUser(context.Background(), recID, "user-1", recruitment.TransitionRequest{
		Status: "accepted",
	})
	assert.ErrorIs(t, err, recruitment.ErrCandidateNotFound)
}

func TestDeleteCandidate_RecomputesCounters(t *testing.T) {
	f := newFixture()
	recID := f.addRecruitment()
	f.addUser("user-1", user.RoleGuest)
	f.addUser("user-2", user.RoleGuest)

	resp1, err := f.svc.Apply(context.Background(), "user-1", recID)
	require.NoError(t, err)
	_, err = f.svc.Apply(context.Background(), "user-2", recID)
	require.NoError(t, err)

	err = f.svc.DeleteCandidate(context.Background(), resp1.ID)
	require.NoError(t, err)

	total, rec := f.counterTotal(t, recID)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, rec.Pending)
}
