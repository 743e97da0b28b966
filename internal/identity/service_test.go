package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahNaeem1090/vidflow-final/internal/domain"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/log"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/notify"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/store"
)

func newTestService(t *testing.T, seed []domain.User) (*Service, *notify.Recorder, domain.BlobStore) {
	t.Helper()
	blobs, err := store.Open("")
	require.NoError(t, err)
	rec := &notify.Recorder{}
	return NewService(blobs, rec, log.NullLogger(), seed), rec, blobs
}

func str(s string) *string { return &s }

func TestRegisterActivatesSession(t *testing.T) {
	svc, rec, _ := newTestService(t, nil)

	require.NoError(t, svc.Register("ana", "a@x.com", "s1"))

	curr, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "ana", curr.Username)
	assert.Equal(t, DefaultAvatar, curr.Avatar)
	assert.True(t, svc.LoggedIn())

	last, _ := rec.Last()
	assert.Equal(t, domain.SeveritySuccess, last.Severity)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, rec, _ := newTestService(t, nil)
	require.NoError(t, svc.Register("ana", "a@x.com", "s1"))

	err := svc.Register("other", "a@x.com", "s2")
	assert.ErrorIs(t, err, domain.ErrDuplicateUser)

	last, _ := rec.Last()
	assert.Equal(t, domain.SeverityError, last.Severity)
	assert.Len(t, svc.Users(), 1)
}

func TestLoginScenario(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	require.NoError(t, svc.Register("ana", "a@x.com", "s1"))
	svc.Logout()

	require.NoError(t, svc.Login("a@x.com", "s1"))
	curr, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "ana", curr.Username)

	// A failed attempt leaves the session untouched.
	err := svc.Login("a@x.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	still, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, curr.ID, still.ID)
}

func TestLogoutClearsSession(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	require.NoError(t, svc.Register("ana", "a@x.com", "s1"))

	svc.Logout()

	_, ok := svc.CurrentUser()
	assert.False(t, ok)
	assert.False(t, svc.LoggedIn())
}

func TestUpdateProfileKeepsSnapshotInSync(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	require.NoError(t, svc.Register("ana", "a@x.com", "s1"))

	require.NoError(t, svc.UpdateProfile(ProfileUpdate{Username: str("ana2"), AvatarURL: str("/pic.png")}))

	curr, ok := svc.CurrentUser()
	require.True(t, ok)
	record, ok := svc.UserByID(curr.ID)
	require.True(t, ok)

	assert.Equal(t, "ana2", record.Username)
	assert.Equal(t, "/pic.png", record.Avatar)
	assert.Equal(t, record, curr, "session snapshot must match the authoritative record")
}

func TestUpdateProfilePartialPatch(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	require.NoError(t, svc.Register("ana", "a@x.com", "s1"))

	require.NoError(t, svc.UpdateProfile(ProfileUpdate{Username: str("ana2")}))

	curr, _ := svc.CurrentUser()
	assert.Equal(t, "ana2", curr.Username)
	assert.Equal(t, DefaultAvatar, curr.Avatar)
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	err := svc.UpdateProfile(ProfileUpdate{Username: str("x")})
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	require.NoError(t, svc.Register("ana", "a@x.com", "s1"))

	err := svc.ChangePassword("nope", "s2")
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)

	require.NoError(t, svc.ChangePassword("s1", "s2"))

	curr, _ := svc.CurrentUser()
	record, _ := svc.UserByID(curr.ID)
	assert.Equal(t, "s2", record.Password)
	assert.Equal(t, record, curr)

	svc.Logout()
	assert.ErrorIs(t, svc.Login("a@x.com", "s1"), domain.ErrInvalidCredentials)
	assert.NoError(t, svc.Login("a@x.com", "s2"))
}

func TestStatePersistsAcrossServices(t *testing.T) {
	svc, _, blobs := newTestService(t, nil)
	require.NoError(t, svc.Register("ana", "a@x.com", "s1"))

	// A second service over the same blob store sees the same state.
	svc2 := NewService(blobs, &notify.Recorder{}, log.NullLogger(), nil)
	curr, ok := svc2.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "ana", curr.Username)
	assert.Len(t, svc2.Users(), 1)
}

func TestCorruptDocumentFallsBackToSeed(t *testing.T) {
	blobs, err := store.Open("")
	require.NoError(t, err)
	require.NoError(t, blobs.Save(domain.KeyAuth, []byte("not json")))

	seed := []domain.User{{ID: "u1", Username: "seeded", Email: "s@x.com"}}
	svc := NewService(blobs, &notify.Recorder{}, log.NullLogger(), seed)

	users := svc.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "seeded", users[0].Username)
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestUsersReturnsCopy(t *testing.T) {
	svc, _, _ := newTestService(t, []domain.User{{ID: "u1", Username: "ana", Email: "a@x.com"}})

	users := svc.Users()
	users[0].Username = "mutated"

	fresh, _ := svc.UserByID("u1")
	assert.Equal(t, "ana", fresh.Username)
}
