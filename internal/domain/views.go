package domain

import "time"

// View aggregates assembled by joining across collections. They are
// built from copies: mutating a returned view never touches the
// collection it was derived from.

// ChannelData is the channel-page aggregate for one user.
type ChannelData struct {
	Name         string
	Subscribers  int
	ProfilePic   string
	BannerImage  string
	IsSubscribed bool
	Videos       []ChannelVideo
	Playlists    []PlaylistPreview
}

// ChannelVideo is the lightweight projection of a video on a channel page.
type ChannelVideo struct {
	ID         string
	Title      string
	Thumbnail  string
	Views      string
	UploadedAt time.Time
}

// PlaylistPreview is a public playlist tile; the thumbnail is borrowed
// from the first video still resolvable in the sequence.
type PlaylistPreview struct {
	ID         string
	Title      string
	Thumbnail  string
	VideoCount int
}

// HomeVideo is one entry of the home feed, joined with its channel.
type HomeVideo struct {
	ID         string
	Thumbnail  string
	Duration   string
	Title      string
	Channel    string
	Views      string
	TimeAgo    string
	ChannelPic string
}

// ChannelInfo is the owning channel joined into a playing video.
type ChannelInfo struct {
	ID           string
	Name         string
	Subscribers  int
	IsSubscribed bool
	Avatar       string
}

// CurrentVideo is the watch-page aggregate for one video.
type CurrentVideo struct {
	Src         string
	Thumbnail   string
	Title       string
	Description string
	Views       int
	UploadedAt  time.Time
	Likes       int
	Channel     ChannelInfo
}

// CommentAuthor is the author identity joined into a comment. A
// placeholder identity is substituted when the account is gone.
type CommentAuthor struct {
	ID       string
	Username string
	Avatar   string
}

// CommentWithAuthor is a hydrated comment.
type CommentWithAuthor struct {
	ID      string
	Text    string
	VideoID string
	Author  CommentAuthor
}

// HistoryEntry is one hydrated watch-history row, newest first.
type HistoryEntry struct {
	ID          string
	Title       string
	Thumbnail   string
	Duration    string
	WatchedAt   string
	ChannelName string
	ViewCount   string
}

// SubscribedChannel is one channel a user subscribes to.
type SubscribedChannel struct {
	ID          string
	Name        string
	Subscribers int
	Description string
	Avatar      string
}

// ResultOwner is the owning channel joined into a video search result.
type ResultOwner struct {
	ID       string
	Username string
	Avatar   string
}

// VideoResult is a video match, ranked by view count.
type VideoResult struct {
	ID        string
	Title     string
	Thumbnail string
	Views     int
	Owner     ResultOwner
}

// UserResult is a user match, in collection order.
type UserResult struct {
	ID       string
	Username string
	Avatar   string
}

// Suggestions holds the typeahead shortlists.
type Suggestions struct {
	Videos []VideoResult
	Users  []UserResult
}

// SearchScope selects which collections a search covers.
type SearchScope string

const (
	ScopeAll    SearchScope = "all"
	ScopeVideos SearchScope = "videos"
	ScopeUsers  SearchScope = "users"
)

// SearchResult is one page of search matches. For ScopeAll the page is
// cut from the combined videos-then-users sequence, so a boundary can
// split the two kinds unevenly.
type SearchResult struct {
	Query       string
	Videos      []VideoResult
	Users       []UserResult
	TotalVideos int
	TotalUsers  int
	Page        int
	TotalPages  int
}

// PlaylistBuckets partitions one owner's playlists by visibility.
type PlaylistBuckets struct {
	Personal         []Playlist
	PublicAndPrivate []Playlist
}
