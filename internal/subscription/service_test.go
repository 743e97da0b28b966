package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahNaeem1090/vidflow-final/internal/domain"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/log"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/store"
)

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

func newTestService(t *testing.T, users fakeUsers, seed []domain.Subscription) *Service {
	t.Helper()
	blobs, err := store.Open("")
	require.NoError(t, err)
	return NewService(blobs, log.NullLogger(), users, seed)
}

func TestToggleFlipsAndRestores(t *testing.T) {
	svc := newTestService(t, fakeUsers{}, nil)

	assert.False(t, svc.IsSubscribed("a", "b"))

	svc.Toggle("a", "b")
	assert.True(t, svc.IsSubscribed("a", "b"))

	svc.Toggle("a", "b")
	assert.False(t, svc.IsSubscribed("a", "b"))
}

func TestToggleKeepsOnePairPerRelationship(t *testing.T) {
	svc := newTestService(t, fakeUsers{}, nil)

	svc.Toggle("a", "b")
	svc.Toggle("a", "c")
	svc.Toggle("b", "c")

	assert.Equal(t, 1, svc.SubscriberCount("b"))
	assert.Equal(t, 2, svc.SubscriberCount("c"))
	assert.Equal(t, 0, svc.SubscriberCount("a"))
}

func TestSubscriberCountMatchesRelationships(t *testing.T) {
	seed := []domain.Subscription{
		{ID: "1", Subscriber: "a", SubscribedTo: "ch"},
		{ID: "2", Subscriber: "b", SubscribedTo: "ch"},
		{ID: "3", Subscriber: "c", SubscribedTo: "other"},
	}
	svc := newTestService(t, fakeUsers{}, seed)

	assert.Equal(t, 2, svc.SubscriberCount("ch"))
	assert.Equal(t, 1, svc.SubscriberCount("other"))
}

func TestSubscriptionsForDropsMissingChannels(t *testing.T) {
	users := fakeUsers{
		"ch1": {ID: "ch1", Username: "Alive", Avatar: "/a.png"},
	}
	seed := []domain.Subscription{
		{ID: "1", Subscriber: "me", SubscribedTo: "ch1"},
		{ID: "2", Subscriber: "me", SubscribedTo: "ghost"},
		{ID: "3", Subscriber: "other", SubscribedTo: "ch1"},
	}
	svc := newTestService(t, users, seed)

	channels := svc.SubscriptionsFor("me")
	require.Len(t, channels, 1)
	assert.Equal(t, "Alive", channels[0].Name)
	assert.Equal(t, 2, channels[0].Subscribers)
}

func TestSubscriptionsForAvatarFallback(t *testing.T) {
	users := fakeUsers{"ch1": {ID: "ch1", Username: "NoFace"}}
	svc := newTestService(t, users, []domain.Subscription{
		{ID: "1", Subscriber: "me", SubscribedTo: "ch1"},
	})

	channels := svc.SubscriptionsFor("me")
	require.Len(t, channels, 1)
	assert.Equal(t, "/user.png", channels[0].Avatar)
}
