package app

import (
	"time"

	"github.com/AbdullahNaeem1090/vidflow-final/internal/domain"
)

// Seed is the initial dataset a store falls back to when it has no
// persisted document. Zero values mean empty collections.
type Seed struct {
	Users         []domain.User
	Videos        []domain.Video
	Playlists     []domain.Playlist
	Subscriptions []domain.Subscription
	Comments      []domain.Comment
	History       []domain.WatchEvent
}

// DemoSeed returns the bundled demo dataset: a handful of channels
// with videos, playlists and subscriptions, enough to make every page
// non-empty on first launch.
func DemoSeed() Seed {
	base := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	return Seed{
		Users: []domain.User{
			{ID: "u-mira", Username: "MiraCodes", Email: "mira@example.com", Avatar: "/avatars/mira.png", Password: "mira123"},
			{ID: "u-dev", Username: "DevDaily", Email: "dev@example.com", Avatar: "/avatars/dev.png", Password: "dev123"},
			{ID: "u-trail", Username: "TrailMix", Email: "trail@example.com", Avatar: "/avatars/trail.png", Password: "trail123"},
		},
		Videos: []domain.Video{
			{
				ID: "v-goroutines", Title: "Goroutines explained in 12 minutes",
				Description: "Channels, select and the scheduler.",
				Owner:       "u-mira", Thumbnail: "/thumbs/goroutines.png",
				VideoURL: "/media/goroutines.mp4", Duration: 743, Views: 1530,
				CreatedAt: base.AddDate(0, -2, 0),
			},
			{
				ID: "v-keyboard", Title: "I built a keyboard from scratch",
				Description: "Hand-wired, 40 percent, way too loud.",
				Owner:       "u-dev", Thumbnail: "/thumbs/keyboard.png",
				VideoURL: "/media/keyboard.mp4", Duration: 1210, Views: 8210,
				CreatedAt: base.AddDate(0, -1, -12),
			},
			{
				ID: "v-alps", Title: "Solo hiking the Alps",
				Description: "Five days, one tent, zero regrets.",
				Owner:       "u-trail", Thumbnail: "/thumbs/alps.png",
				VideoURL: "/media/alps.mp4", Duration: 2045, Views: 430,
				CreatedAt: base.AddDate(0, 0, -20),
			},
			{
				ID: "v-errors", Title: "Error handling patterns that scale",
				Description: "Sentinels, wrapping and when to panic.",
				Owner:       "u-mira", Thumbnail: "/thumbs/errors.png",
				VideoURL: "/media/errors.mp4", Duration: 987, Views: 2720,
				CreatedAt: base.AddDate(0, 0, -6),
			},
		},
		Playlists: []domain.Playlist{
			{
				ID: "p-golang", Owner: "u-mira", Title: "Go from zero",
				Description: "Everything Go, in order.",
				Videos:      []string{"v-goroutines", "v-errors"},
				Category:    domain.CategoryPublic,
			},
			{
				ID: "p-later", Owner: "u-dev", Title: "Watch later",
				Description: "",
				Videos:      []string{"v-alps"},
				Category:    domain.CategoryPersonal,
			},
		},
		Subscriptions: []domain.Subscription{
			{ID: "s-1", Subscriber: "u-dev", SubscribedTo: "u-mira"},
			{ID: "s-2", Subscriber: "u-trail", SubscribedTo: "u-mira"},
			{ID: "s-3", Subscriber: "u-mira", SubscribedTo: "u-trail"},
		},
		Comments: []domain.Comment{
			{ID: "c-1", Author: "u-dev", VideoID: "v-goroutines", Text: "The select section finally made it click."},
			{ID: "c-2", Author: "u-trail", VideoID: "v-keyboard", Text: "Those switches sound like a typewriter avalanche."},
		},
		History: []domain.WatchEvent{
			{ID: "h-1", UserID: "u-dev", VideoID: "v-goroutines", WatchedAt: base.AddDate(0, 0, -3)},
			{ID: "h-2", UserID: "u-dev", VideoID: "v-alps", WatchedAt: base.AddDate(0, 0, -1)},
		},
	}
}
