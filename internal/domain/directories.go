package domain

// Read-only capability handles injected at construction. Each store
// owns its collection exclusively; everything a store learns about
// another's state comes through one of these, by value. The handles
// form a DAG wired once at startup.

// SessionDirectory exposes the active session to stores that need the
// caller's identity.
type SessionDirectory interface {
	// CurrentUser returns a copy of the session snapshot, or false when
	// nobody is logged in.
	CurrentUser() (User, bool)
}

// UserDirectory provides lookups into the user collection.
type UserDirectory interface {
	UserByID(id string) (User, bool)
	Users() []User
}

// VideoDirectory provides lookups into the video collection.
type VideoDirectory interface {
	VideoByID(id string) (Video, bool)
	Videos() []Video
}

// SubscriptionDirectory provides subscription reads for joins.
type SubscriptionDirectory interface {
	IsSubscribed(subscriberID, channelID string) bool
	SubscriberCount(channelID string) int
}

// PlaylistDirectory provides the playlist reads a channel page needs.
type PlaylistDirectory interface {
	// PublicByOwner returns copies of the owner's Public playlists.
	PublicByOwner(ownerID string) []Playlist
}

// HistoryRecorder appends watch events. Recording is fire-and-forget:
// failures never surface to the viewer.
type HistoryRecorder interface {
	Record(userID, videoID string)
}
