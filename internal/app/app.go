// Package app owns the store instances and the capability wiring
// between them. Nothing is a package-level singleton: the App is
// constructed once at startup and passed down.
//
// Execution is single-threaded and cooperative: a store operation runs
// to completion before control returns, and cross-store reads during a
// mutation are plain synchronous calls. One caller owns an App; the
// stores take no locks.
package app

import (
	"log/slog"

	"github.com/AbdullahNaeem1090/vidflow-final/internal/comment"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/config"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/domain"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/history"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/identity"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/media"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/playlist"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/search"
	"github.com/AbdullahNaeem1090/vidflow-final/internal/subscription"
)

// App is the context object owning every store instance.
type App struct {
	Identity      *identity.Service
	Media         *media.Service
	Subscriptions *subscription.Service
	Playlists     *playlist.Service
	Comments      *comment.Service
	History       *history.Service
	Search        *search.Service
}

// New constructs the stores over the given blob store and wires the
// capability handles. Identity comes first (no dependencies); the
// collection stores sit on top of it; search reads media and identity.
// The two read-only back-references (channel page into media/playlist/
// subscription, history listing into media) are bound last, closing
// the construction cycle without any store holding mutable state of
// another.
func New(cfg *config.Config, store domain.BlobStore, notifier domain.Notifier, logger *slog.Logger, seed Seed) *App {
	if logger == nil {
		logger = slog.Default()
	}

	identitySvc := identity.NewService(store, notifier, logger, seed.Users)
	subsSvc := subscription.NewService(store, logger, identitySvc, seed.Subscriptions)
	playlistSvc := playlist.NewService(store, notifier, logger, identitySvc, seed.Playlists)
	commentSvc := comment.NewService(store, notifier, logger, identitySvc, identitySvc, seed.Comments)
	historySvc := history.NewService(store, notifier, logger, identitySvc, identitySvc, seed.History)
	mediaSvc := media.NewService(store, notifier, logger, identitySvc, identitySvc, subsSvc, historySvc, seed.Videos)

	historySvc.BindVideos(mediaSvc)
	identitySvc.BindChannelSources(mediaSvc, playlistSvc, subsSvc)

	searchSvc := search.NewService(search.Options{
		PageSize:       cfg.Search.PageSize,
		SuggestLimit:   cfg.Search.SuggestLimit,
		MinQueryLength: cfg.Search.MinQueryLength,
	}, mediaSvc, identitySvc, logger)

	return &App{
		Identity:      identitySvc,
		Media:         mediaSvc,
		Subscriptions: subsSvc,
		Playlists:     playlistSvc,
		Comments:      commentSvc,
		History:       historySvc,
		Search:        searchSvc,
	}
}
