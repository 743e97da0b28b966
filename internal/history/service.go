// Package history owns the watch-event collection. Recording is a
// silent operation: precondition failures and the consecutive
// duplicate rule never surface to the viewer.
package history

import (
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/AbdullahNaeem1090/vidflow-final/internal/domain"
)

const docVersion = 1

type historyDocument struct {
	Version int                 `json:"version"`
	Events  []domain.WatchEvent `json:"watchHistory"`
}

// Service is the watch-history store.
type Service struct {
	store  domain.BlobStore
	notify domain.Notifier
	logger *slog.Logger

	sessions domain.SessionDirectory
	users    domain.UserDirectory
	videos   domain.VideoDirectory

	events []domain.WatchEvent

	now func() time.Time
}

// NewService loads the persisted watch events, falling back to seed
// when no document exists. The video directory is bound separately
// after the media store exists.
func NewService(store domain.BlobStore, notify domain.Notifier, logger *slog.Logger, sessions domain.SessionDirectory, users domain.UserDirectory, seed []domain.WatchEvent) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		store:    store,
		notify:   notify,
		logger:   logger,
		sessions: sessions,
		users:    users,
		now:      time.Now,
	}
	s.load(seed)
	return s
}

// BindVideos wires the video directory used by the hydrated listing.
// Called once during startup wiring.
func (s *Service) BindVideos(videos domain.VideoDirectory) {
	s.videos = videos
}

func (s *Service) load(seed []domain.WatchEvent) {
	data, ok := s.store.Load(domain.KeyWatchHistory)
	if !ok {
		s.events = append([]domain.WatchEvent(nil), seed...)
		return
	}
	var doc historyDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Error("failed to decode history document, using seed", "error", err)
		s.events = append([]domain.WatchEvent(nil), seed...)
		return
	}
	s.events = doc.Events
}

func (s *Service) persist() {
	data, err := json.Marshal(historyDocument{Version: docVersion, Events: s.events})
	if err != nil {
		s.logger.Error("failed to encode history document", "error", err)
		return
	}
	if err := s.store.Save(domain.KeyWatchHistory, data); err != nil {
		s.logger.Error("failed to save history document", "error", err)
	}
}

// sortedFor returns the user's events newest first.
func (s *Service) sortedFor(userID string) []domain.WatchEvent {
	var events []domain.WatchEvent
	for _, e := range s.events {
		if e.UserID == userID {
			events = append(events, e)
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].WatchedAt.After(events[j].WatchedAt)
	})
	return events
}

// Record appends a watch event for the viewer. Silent on every
// precondition: no session, a viewer that is not the session user, or
// a video identical to the viewer's most recent event (consecutive
// duplicate views collapse into one entry).
func (s *Service) Record(userID, videoID string) {
	curr, ok := s.sessions.CurrentUser()
	if !ok || curr.ID != userID {
		return
	}

	if recent := s.sortedFor(userID); len(recent) > 0 && recent[0].VideoID == videoID {
		return
	}

	s.events = append(s.events, domain.WatchEvent{
		ID:        uuid.NewString(),
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: s.now(),
	})
	s.persist()
	s.logger.Debug("recorded watch event", "userID", userID, "videoID", videoID)
}

// ListForViewer returns the viewer's history newest first, each entry
// joined with its video and the video's channel. Events whose video no
// longer resolves are dropped.
func (s *Service) ListForViewer(userID string) []domain.HistoryEntry {
	now := s.now()
	var out []domain.HistoryEntry
	for _, e := range s.sortedFor(userID) {
		video, ok := s.videos.VideoByID(e.VideoID)
		if !ok {
			continue
		}
		channelName := "Unknown Channel"
		if owner, ok := s.users.UserByID(video.Owner); ok {
			channelName = owner.Username
		}
		out = append(out, domain.HistoryEntry{
			ID:          e.ID,
			Title:       video.Title,
			Thumbnail:   video.Thumbnail,
			Duration:    video.FormattedDuration(),
			WatchedAt:   domain.FormatTimeAgo(e.WatchedAt, now),
			ChannelName: channelName,
			ViewCount:   video.FormattedViews(),
		})
	}
	return out
}

// RemoveOne deletes a single history entry; only its viewer may.
func (s *Service) RemoveOne(historyID, userID string) error {
	i := -1
	for idx := range s.events {
		if s.events[idx].ID == historyID {
			i = idx
			break
		}
	}
	if i < 0 {
		s.notify.Notify(domain.SeverityError, "History item not found")
		return domain.ErrHistoryNotFound
	}
	if s.events[i].UserID != userID {
		s.notify.Notify(domain.SeverityError, "You can only delete your own watch history")
		return domain.ErrNotOwner
	}

	s.events = append(s.events[:i], s.events[i+1:]...)
	s.persist()

	s.notify.Notify(domain.SeveritySuccess, "Removed from watch history")
	return nil
}

// ClearAll wipes the viewer's entire history. The viewer must be the
// session user.
func (s *Service) ClearAll(userID string) error {
	curr, ok := s.sessions.CurrentUser()
	if !ok {
		s.notify.Notify(domain.SeverityError, "You must be logged in")
		return domain.ErrNoActiveSession
	}
	if curr.ID != userID {
		s.notify.Notify(domain.SeverityError, "Invalid user")
		return domain.ErrNotOwner
	}

	kept := s.events[:0]
	for _, e := range s.events {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	s.events = kept
	s.persist()

	s.notify.Notify(domain.SeveritySuccess, "Watch history cleared")
	return nil
}
