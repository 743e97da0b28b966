// Package playlist owns the playlist collection and its derived
// per-owner visibility buckets (Personal vs Public/Private). The
// buckets are recomputed on every call that changes membership.
package playlist

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/AbdullahNaeem1090/vidflow-final/internal/domain"
)

const docVersion = 1

type playlistDocument struct {
	Version   int               `json:"version"`
	Playlists []domain.Playlist `json:"playlists"`
}

// Update carries the mutable playlist fields; empty means keep.
type Update struct {
	Title    string
	Category domain.PlaylistCategory
}

// Service is the playlist store.
type Service struct {
	store  domain.BlobStore
	notify domain.Notifier
	logger *slog.Logger

	sessions domain.SessionDirectory

	playlists []domain.Playlist

	// Derived buckets for the owner last asked for; recomputed after
	// every membership change so a cached read can never go stale.
	buckets      domain.PlaylistBuckets
	bucketsOwner string
}

// NewService loads the persisted playlist collection, falling back to
// seed when no document exists.
func NewService(store domain.BlobStore, notify domain.Notifier, logger *slog.Logger, sessions domain.SessionDirectory, seed []domain.Playlist) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{store: store, notify: notify, logger: logger, sessions: sessions}
	s.load(seed)
	return s
}

func (s *Service) load(seed []domain.Playlist) {
	data, ok := s.store.Load(domain.KeyPlaylists)
	if !ok {
		s.playlists = cloneAll(seed)
		return
	}
	var doc playlistDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Error("failed to decode playlist document, using seed", "error", err)
		s.playlists = cloneAll(seed)
		return
	}
	s.playlists = doc.Playlists
}

func (s *Service) persist() {
	data, err := json.Marshal(playlistDocument{Version: docVersion, Playlists: s.playlists})
	if err != nil {
		s.logger.Error("failed to encode playlist document", "error", err)
		return
	}
	if err := s.store.Save(domain.KeyPlaylists, data); err != nil {
		s.logger.Error("failed to save playlist document", "error", err)
	}
}

// rebuildBuckets recomputes the derived partition for the cached
// owner. Called after every mutation that can change membership.
func (s *Service) rebuildBuckets() {
	if s.bucketsOwner == "" {
		return
	}
	s.buckets = s.partition(s.bucketsOwner)
}

func (s *Service) partition(ownerID string) domain.PlaylistBuckets {
	var b domain.PlaylistBuckets
	for _, p := range s.playlists {
		if p.Owner != ownerID {
			continue
		}
		switch p.Category {
		case domain.CategoryPersonal:
			b.Personal = append(b.Personal, p.Clone())
		case domain.CategoryPublic, domain.CategoryPrivate:
			b.PublicAndPrivate = append(b.PublicAndPrivate, p.Clone())
		}
	}
	return b
}

func (s *Service) find(playlistID string) int {
	for i := range s.playlists {
		if s.playlists[i].ID == playlistID {
			return i
		}
	}
	return -1
}

// Create allocates an empty playlist owned by the session user.
func (s *Service) Create(title, description string, category domain.PlaylistCategory) error {
	curr, ok := s.sessions.CurrentUser()
	if !ok {
		s.notify.Notify(domain.SeverityError, "You must be logged in to create a playlist")
		return domain.ErrNoActiveSession
	}

	s.playlists = append(s.playlists, domain.Playlist{
		ID:          uuid.NewString(),
		Owner:       curr.ID,
		Title:       title,
		Description: description,
		Videos:      []string{},
		Category:    category,
	})
	s.rebuildBuckets()
	s.persist()

	s.notify.Notify(domain.SeveritySuccess, "Playlist created")
	return nil
}

// ToggleVideo appends the video ID when absent and removes its first
// occurrence when present. Re-adding after removal appends at the end,
// not at the original position.
func (s *Service) ToggleVideo(playlistID, videoID string) error {
	i := s.find(playlistID)
	if i < 0 {
		s.notify.Notify(domain.SeverityError, "Playlist not found")
		return domain.ErrPlaylistNotFound
	}

	p := &s.playlists[i]
	removed := false
	for j, id := range p.Videos {
		if id == videoID {
			p.Videos = append(p.Videos[:j], p.Videos[j+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		p.Videos = append(p.Videos, videoID)
	}
	s.rebuildBuckets()
	s.persist()

	if removed {
		s.notify.Notify(domain.SeveritySuccess, "Video removed from playlist")
	} else {
		s.notify.Notify(domain.SeveritySuccess, "Video added to playlist")
	}
	return nil
}

// RemoveVideoEverywhere strips the video ID from every playlist. It is
// the purge hook external cascade logic calls when a video goes away;
// the media store never invokes it on its own.
func (s *Service) RemoveVideoEverywhere(videoID string) {
	for i := range s.playlists {
		p := &s.playlists[i]
		kept := p.Videos[:0]
		for _, id := range p.Videos {
			if id != videoID {
				kept = append(kept, id)
			}
		}
		p.Videos = kept
	}
	s.rebuildBuckets()
	s.persist()

	s.notify.Notify(domain.SeveritySuccess, "Video removed from all playlists")
}

// Delete removes the playlist. Ownership is enforced only while a
// session is active; with no session the delete goes through. That
// asymmetry is inherited behavior, kept as documented.
func (s *Service) Delete(playlistID string) error {
	i := s.find(playlistID)
	if i < 0 {
		s.notify.Notify(domain.SeverityError, "Playlist not found")
		return domain.ErrPlaylistNotFound
	}
	if curr, ok := s.sessions.CurrentUser(); ok && s.playlists[i].Owner != curr.ID {
		s.notify.Notify(domain.SeverityError, "You can only delete your own playlists")
		return domain.ErrNotOwner
	}

	s.playlists = append(s.playlists[:i], s.playlists[i+1:]...)
	s.rebuildBuckets()
	s.persist()

	s.notify.Notify(domain.SeveritySuccess, "Playlist deleted")
	return nil
}

// UpdateMeta applies title and category changes under the same
// ownership rule as Delete. A category change moves the playlist
// between buckets in the same step as the primary update.
func (s *Service) UpdateMeta(playlistID string, update Update) error {
	i := s.find(playlistID)
	if i < 0 {
		s.notify.Notify(domain.SeverityError, "Playlist not found")
		return domain.ErrPlaylistNotFound
	}
	if curr, ok := s.sessions.CurrentUser(); ok && s.playlists[i].Owner != curr.ID {
		s.notify.Notify(domain.SeverityError, "You can only update your own playlists")
		return domain.ErrNotOwner
	}

	if update.Title != "" {
		s.playlists[i].Title = update.Title
	}
	if update.Category != "" {
		s.playlists[i].Category = update.Category
	}
	s.rebuildBuckets()
	s.persist()

	s.notify.Notify(domain.SeveritySuccess, "Playlist updated")
	return nil
}

// ListByOwner partitions the owner's playlists into Personal and
// Public-or-Private buckets. The result is cached and kept fresh by
// every mutator until a different owner is asked for.
func (s *Service) ListByOwner(ownerID string) domain.PlaylistBuckets {
	s.bucketsOwner = ownerID
	s.buckets = s.partition(ownerID)
	return s.buckets
}

// PublicByOwner returns copies of the owner's Public playlists, for
// channel-page previews.
func (s *Service) PublicByOwner(ownerID string) []domain.Playlist {
	var out []domain.Playlist
	for _, p := range s.playlists {
		if p.Owner == ownerID && p.Category == domain.CategoryPublic {
			out = append(out, p.Clone())
		}
	}
	return out
}

// PlaylistByID returns a copy of the playlist record.
func (s *Service) PlaylistByID(id string) (domain.Playlist, bool) {
	if i := s.find(id); i >= 0 {
		return s.playlists[i].Clone(), true
	}
	return domain.Playlist{}, false
}

func cloneAll(in []domain.Playlist) []domain.Playlist {
	out := make([]domain.Playlist, 0, len(in))
	for _, p := range in {
		out = append(out, p.Clone())
	}
	return out
}
