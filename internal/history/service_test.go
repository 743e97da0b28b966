package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahNaeem1090/vidflow-final/internal/domain"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/log"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/notify"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/store"
)

type fakeSession struct {
	user *domain.User
}

func (f *fakeSession) CurrentUser() (domain.User, bool) {
	if f.user == nil {
		return domain.User{}, false
	}
	return *f.user, true
}

type fakeUsers map[string]domain.User

func (f fakeUsers) UserByID(id string) (domain.User, bool) {
	u, ok := f[id]
	return u, ok
}

func (f fakeUsers) Users() []domain.User {
	out := make([]domain.User, 0, len(f))
	for _, u := range f {
		out = append(out, u)
	}
	return out
}

type fakeVideos map[string]domain.Video

func (f fakeVideos) VideoByID(id string) (domain.Video, bool) {
	v, ok := f[id]
	return v, ok
}

func (f fakeVideos) Videos() []domain.Video {
	out := make([]domain.Video, 0, len(f))
	for _, v := range f {
		out = append(out, v)
	}
	return out
}

func newTestService(t *testing.T, videos fakeVideos, seed []domain.WatchEvent) (*Service, *fakeSession) {
	t.Helper()
	blobs, err := store.Open("")
	require.NoError(t, err)
	sess := &fakeSession{user: &domain.User{ID: "me", Username: "Me"}}
	users := fakeUsers{"ch": {ID: "ch", Username: "Channel"}}
	svc := NewService(blobs, &notify.Recorder{}, log.NullLogger(), sess, users, seed)
	svc.BindVideos(videos)
	return svc, sess
}

// tick returns a clock advancing one second per call.
func tick() func() time.Time {
	t0 := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return t0.Add(time.Duration(n) * time.Second)
	}
}

func TestRecordSuppressesConsecutiveDuplicates(t *testing.T) {
	svc, _ := newTestService(t, fakeVideos{}, nil)
	svc.now = tick()

	svc.Record("me", "v1")
	svc.Record("me", "v1")
	svc.Record("me", "v1")

	assert.Len(t, svc.events, 1)

	// A different video in between makes the repeat count again.
	svc.Record("me", "v2")
	svc.Record("me", "v1")
	assert.Len(t, svc.events, 3)
}

func TestRecordSilentWithoutSession(t *testing.T) {
	svc, sess := newTestService(t, fakeVideos{}, nil)
	sess.user = nil

	svc.Record("me", "v1")
	assert.Empty(t, svc.events)
}

func TestRecordSilentOnViewerMismatch(t *testing.T) {
	svc, _ := newTestService(t, fakeVideos{}, nil)

	svc.Record("someone-else", "v1")
	assert.Empty(t, svc.events)
}

func TestListForViewerNewestFirstDropsDangling(t *testing.T) {
	videos := fakeVideos{
		"v1": {ID: "v1", Title: "First", Owner: "ch", Duration: 65, Views: 1200},
		"v2": {ID: "v2", Title: "Second", Owner: "ghost", Duration: 30, Views: 3},
	}
	base := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	seed := []domain.WatchEvent{
		{ID: "h1", UserID: "me", VideoID: "v1", WatchedAt: base},
		{ID: "h2", UserID: "me", VideoID: "gone", WatchedAt: base.Add(time.Minute)},
		{ID: "h3", UserID: "me", VideoID: "v2", WatchedAt: base.Add(2 * time.Minute)},
		{ID: "h4", UserID: "other", VideoID: "v1", WatchedAt: base.Add(3 * time.Minute)},
	}
	svc, _ := newTestService(t, videos, seed)

	list := svc.ListForViewer("me")
	require.Len(t, list, 2)
	assert.Equal(t, "h3", list[0].ID)
	assert.Equal(t, "Unknown Channel", list[0].ChannelName)
	assert.Equal(t, "h1", list[1].ID)
	assert.Equal(t, "Channel", list[1].ChannelName)
	assert.Equal(t, "1:05", list[1].Duration)
	assert.Equal(t, "1.2K views", list[1].ViewCount)
}

func TestRemoveOneEnforcesViewer(t *testing.T) {
	seed := []domain.WatchEvent{{ID: "h1", UserID: "me", VideoID: "v1", WatchedAt: time.Now()}}
	svc, _ := newTestService(t, fakeVideos{}, seed)

	assert.ErrorIs(t, svc.RemoveOne("h1", "intruder"), domain.ErrNotOwner)
	assert.ErrorIs(t, svc.RemoveOne("ghost", "me"), domain.ErrHistoryNotFound)

	require.NoError(t, svc.RemoveOne("h1", "me"))
	assert.Empty(t, svc.events)
}

func TestClearAllOnlyOwnEvents(t *testing.T) {
	base := time.Now()
	seed := []domain.WatchEvent{
		{ID: "h1", UserID: "me", VideoID: "v1", WatchedAt: base},
		{ID: "h2", UserID: "other", VideoID: "v1", WatchedAt: base},
		{ID: "h3", UserID: "me", VideoID: "v2", WatchedAt: base},
	}
	svc, sess := newTestService(t, fakeVideos{}, seed)

	assert.ErrorIs(t, svc.ClearAll("other"), domain.ErrNotOwner)

	require.NoError(t, svc.ClearAll("me"))
	require.Len(t, svc.events, 1)
	assert.Equal(t, "other", svc.events[0].UserID)

	sess.user = nil
	assert.ErrorIs(t, svc.ClearAll("me"), domain.ErrNoActiveSession)
}
