package domain

import "time"

// User is an account record. The password is stored in plaintext: the
// whole backend is a mock and credentials carry no real secrets.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Password string `json:"password"`
}

// Video is an uploaded media item owned by a user.
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Owner       string    `json:"owner"` // user ID
	Thumbnail   string    `json:"thumbnail"`
	VideoURL    string    `json:"videoURL"`
	Duration    int       `json:"duration"` // seconds
	Views       int       `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FormattedDuration returns the duration as m:ss, or h:mm:ss for
// videos an hour or longer.
func (v Video) FormattedDuration() string {
	return FormatDuration(v.Duration)
}

// FormattedViews returns the view counter as a compact label, e.g.
// "1.2K views".
func (v Video) FormattedViews() string {
	return FormatViews(v.Views)
}

// PlaylistCategory controls playlist visibility.
type PlaylistCategory string

const (
	CategoryPublic   PlaylistCategory = "Public"
	CategoryPrivate  PlaylistCategory = "Private"
	CategoryPersonal PlaylistCategory = "Personal"
)

// Valid reports whether c is one of the known categories.
func (c PlaylistCategory) Valid() bool {
	switch c {
	case CategoryPublic, CategoryPrivate, CategoryPersonal:
		return true
	}
	return false
}

// Playlist is an ordered sequence of video IDs owned by a user.
type Playlist struct {
	ID          string           `json:"id"`
	Owner       string           `json:"owner"` // user ID
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Videos      []string         `json:"videos"` // video IDs, insertion order
	Category    PlaylistCategory `json:"category"`
}

// Contains reports whether the playlist references the given video.
func (p Playlist) Contains(videoID string) bool {
	for _, id := range p.Videos {
		if id == videoID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy; Videos is the only reference field.
func (p Playlist) Clone() Playlist {
	out := p
	out.Videos = make([]string, len(p.Videos))
	copy(out.Videos, p.Videos)
	return out
}

// Subscription links a subscriber to a channel. At most one record
// exists per (subscriber, channel) pair.
type Subscription struct {
	ID           string `json:"id"`
	Subscriber   string `json:"subscriber"`   // user ID
	SubscribedTo string `json:"subscribedTo"` // channel (user) ID
}

// Comment is a free-text annotation on a video.
type Comment struct {
	ID      string `json:"id"`
	Author  string `json:"author"` // user ID
	VideoID string `json:"videoId"`
	Text    string `json:"comment"`
}

// WatchEvent records one view of a video by a user.
type WatchEvent struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	VideoID   string    `json:"videoId"`
	WatchedAt time.Time `json:"watchedAt"`
}
