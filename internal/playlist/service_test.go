package playlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahNaeem1090/vidflow-final/internal/domain"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/log"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/notify"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/store"
)

// fakeSession is a settable session directory.
type fakeSession struct {
	user *domain.User
}

func (f *fakeSession) CurrentUser() (domain.User, bool) {
	if f.user == nil {
		return domain.User{}, false
	}
	return *f.user, true
}

func newTestService(t *testing.T, seed []domain.Playlist) (*Service, *fakeSession, *notify.Recorder) {
	t.Helper()
	blobs, err := store.Open("")
	require.NoError(t, err)
	sess := &fakeSession{user: &domain.User{ID: "me", Username: "Me"}}
	rec := &notify.Recorder{}
	return NewService(blobs, rec, log.NullLogger(), sess, seed), sess, rec
}

func ownedPlaylist(id, owner string, cat domain.PlaylistCategory, videos ...string) domain.Playlist {
	if videos == nil {
		videos = []string{}
	}
	return domain.Playlist{ID: id, Owner: owner, Title: id, Videos: videos, Category: cat}
}

func TestCreateRequiresSession(t *testing.T) {
	svc, sess, rec := newTestService(t, nil)
	sess.user = nil

	err := svc.Create("mix", "", domain.CategoryPublic)
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)

	last, _ := rec.Last()
	assert.Equal(t, domain.SeverityError, last.Severity)
}

func TestCreateAllocatesEmptyPlaylist(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	require.NoError(t, svc.Create("mix", "my stuff", domain.CategoryPersonal))

	buckets := svc.ListByOwner("me")
	require.Len(t, buckets.Personal, 1)
	assert.Empty(t, buckets.Personal[0].Videos)
	assert.Equal(t, "mix", buckets.Personal[0].Title)
	assert.Empty(t, buckets.PublicAndPrivate)
}

func TestToggleVideoScenario(t *testing.T) {
	svc, _, _ := newTestService(t, []domain.Playlist{ownedPlaylist("p1", "me", domain.CategoryPersonal)})

	require.NoError(t, svc.ToggleVideo("p1", "v1"))
	p, _ := svc.PlaylistByID("p1")
	assert.Equal(t, []string{"v1"}, p.Videos)

	require.NoError(t, svc.ToggleVideo("p1", "v1"))
	p, _ = svc.PlaylistByID("p1")
	assert.Empty(t, p.Videos)
}

func TestToggleVideoReAddAppendsAtEnd(t *testing.T) {
	svc, _, _ := newTestService(t, []domain.Playlist{ownedPlaylist("p1", "me", domain.CategoryPublic, "v1", "v2", "v3")})

	require.NoError(t, svc.ToggleVideo("p1", "v1")) // remove head
	require.NoError(t, svc.ToggleVideo("p1", "v1")) // re-add

	p, _ := svc.PlaylistByID("p1")
	assert.Equal(t, []string{"v2", "v3", "v1"}, p.Videos)
}

func TestToggleVideoUnknownPlaylist(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	assert.ErrorIs(t, svc.ToggleVideo("nope", "v1"), domain.ErrPlaylistNotFound)
}

func TestRemoveVideoEverywhere(t *testing.T) {
	svc, _, _ := newTestService(t, []domain.Playlist{
		ownedPlaylist("p1", "me", domain.CategoryPublic, "v1", "v2"),
		ownedPlaylist("p2", "other", domain.CategoryPersonal, "v1"),
		ownedPlaylist("p3", "me", domain.CategoryPrivate, "v3"),
	})

	svc.RemoveVideoEverywhere("v1")

	p1, _ := svc.PlaylistByID("p1")
	p2, _ := svc.PlaylistByID("p2")
	p3, _ := svc.PlaylistByID("p3")
	assert.Equal(t, []string{"v2"}, p1.Videos)
	assert.Empty(t, p2.Videos)
	assert.Equal(t, []string{"v3"}, p3.Videos)
}

func TestDeleteEnforcesOwnershipWithSession(t *testing.T) {
	svc, _, _ := newTestService(t, []domain.Playlist{ownedPlaylist("p1", "other", domain.CategoryPublic)})

	assert.ErrorIs(t, svc.Delete("p1"), domain.ErrNotOwner)
	_, ok := svc.PlaylistByID("p1")
	assert.True(t, ok)
}

func TestDeleteSkipsOwnershipWithoutSession(t *testing.T) {
	// Inherited quirk: with no active session the ownership check is
	// bypassed and the delete succeeds.
	svc, sess, _ := newTestService(t, []domain.Playlist{ownedPlaylist("p1", "other", domain.CategoryPublic)})
	sess.user = nil

	require.NoError(t, svc.Delete("p1"))
	_, ok := svc.PlaylistByID("p1")
	assert.False(t, ok)
}

func TestUpdateMovesBetweenBuckets(t *testing.T) {
	svc, _, _ := newTestService(t, []domain.Playlist{ownedPlaylist("p1", "me", domain.CategoryPersonal)})

	buckets := svc.ListByOwner("me")
	require.Len(t, buckets.Personal, 1)

	require.NoError(t, svc.UpdateMeta("p1", Update{Title: "renamed", Category: domain.CategoryPublic}))

	buckets = svc.ListByOwner("me")
	assert.Empty(t, buckets.Personal)
	require.Len(t, buckets.PublicAndPrivate, 1)
	assert.Equal(t, "renamed", buckets.PublicAndPrivate[0].Title)
}

func TestBucketsStayFreshAfterMutation(t *testing.T) {
	svc, _, _ := newTestService(t, []domain.Playlist{ownedPlaylist("p1", "me", domain.CategoryPersonal)})

	// Prime the cached partition, then mutate membership.
	svc.ListByOwner("me")
	require.NoError(t, svc.ToggleVideo("p1", "v9"))

	buckets := svc.ListByOwner("me")
	require.Len(t, buckets.Personal, 1)
	assert.Equal(t, []string{"v9"}, buckets.Personal[0].Videos)
}

func TestPublicByOwnerFiltersCategory(t *testing.T) {
	svc, _, _ := newTestService(t, []domain.Playlist{
		ownedPlaylist("p1", "me", domain.CategoryPublic, "v1"),
		ownedPlaylist("p2", "me", domain.CategoryPrivate),
		ownedPlaylist("p3", "me", domain.CategoryPersonal),
		ownedPlaylist("p4", "other", domain.CategoryPublic),
	})

	public := svc.PublicByOwner("me")
	require.Len(t, public, 1)
	assert.Equal(t, "p1", public[0].ID)

	// Returned playlists are copies.
	public[0].Videos[0] = "mutated"
	fresh, _ := svc.PlaylistByID("p1")
	assert.Equal(t, []string{"v1"}, fresh.Videos)
}
