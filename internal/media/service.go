// Package media owns the video collection, the home-feed projection
// and the watch-page aggregate.
package media

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AbdullahNaeem1090/vidflow-final/internal/domain"
)

const docVersion = 1

type videoDocument struct {
	Version int            `json:"version"`
	Videos  []domain.Video `json:"videos"`
}

// Upload carries the metadata for a new video.
type Upload struct {
	Title       string
	Description string
	Thumbnail   string
	VideoURL    string
	Duration    int // seconds
}

// Service is the media store.
type Service struct {
	store  domain.BlobStore
	notify domain.Notifier
	logger *slog.Logger

	sessions domain.SessionDirectory
	users    domain.UserDirectory
	subs     domain.SubscriptionDirectory
	history  domain.HistoryRecorder

	videos []domain.Video
	home   []domain.HomeVideo

	// Guards the home projection against re-entrant rebuilds; a second
	// call while one is in flight returns the projection as-is.
	buildingHome bool

	now func() time.Time
}

// NewService loads the persisted video collection, falling back to
// seed when no document exists.
func NewService(
	store domain.BlobStore,
	notify domain.Notifier,
	logger *slog.Logger,
	sessions domain.SessionDirectory,
	users domain.UserDirectory,
	subs domain.SubscriptionDirectory,
	history domain.HistoryRecorder,
	seed []domain.Video,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		store:    store,
		notify:   notify,
		logger:   logger,
		sessions: sessions,
		users:    users,
		subs:     subs,
		history:  history,
		now:      time.Now,
	}
	s.load(seed)
	return s
}

func (s *Service) load(seed []domain.Video) {
	data, ok := s.store.Load(domain.KeyVideos)
	if !ok {
		s.videos = append([]domain.Video(nil), seed...)
		return
	}
	var doc videoDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Error("failed to decode video document, using seed", "error", err)
		s.videos = append([]domain.Video(nil), seed...)
		return
	}
	s.videos = doc.Videos
}

func (s *Service) persist() {
	data, err := json.Marshal(videoDocument{Version: docVersion, Videos: s.videos})
	if err != nil {
		s.logger.Error("failed to encode video document", "error", err)
		return
	}
	if err := s.store.Save(domain.KeyVideos, data); err != nil {
		s.logger.Error("failed to save video document", "error", err)
	}
}

// Publish creates a video owned by the session user, prepended so the
// collection stays most-recent-first.
func (s *Service) Publish(up Upload) error {
	curr, ok := s.sessions.CurrentUser()
	if !ok {
		s.notify.Notify(domain.SeverityError, "You must be logged in to upload videos")
		return domain.ErrNoActiveSession
	}

	video := domain.Video{
		ID:          uuid.NewString(),
		Title:       up.Title,
		Description: up.Description,
		Owner:       curr.ID,
		Thumbnail:   up.Thumbnail,
		VideoURL:    up.VideoURL,
		Duration:    up.Duration,
		Views:       0,
		CreatedAt:   s.now(),
	}
	s.videos = append([]domain.Video{video}, s.videos...)
	s.persist()

	s.logger.Info("published video", "videoID", video.ID, "owner", curr.ID)
	s.notify.Notify(domain.SeveritySuccess, "Video uploaded successfully! Refresh to see it.")
	return nil
}

// Home rebuilds and returns the home-feed projection, every video
// joined with its channel identity. Re-entrant calls while a rebuild
// is in flight return the current projection untouched.
func (s *Service) Home() []domain.HomeVideo {
	if s.buildingHome {
		return s.home
	}
	s.buildingHome = true
	defer func() { s.buildingHome = false }()

	now := s.now()
	feed := make([]domain.HomeVideo, 0, len(s.videos))
	for _, v := range s.videos {
		channel := "User"
		channelPic := ""
		if owner, ok := s.users.UserByID(v.Owner); ok {
			channel = owner.Username
			channelPic = owner.Avatar
		}
		feed = append(feed, domain.HomeVideo{
			ID:         v.ID,
			Thumbnail:  v.Thumbnail,
			Duration:   v.FormattedDuration(),
			Title:      v.Title,
			Channel:    channel,
			Views:      v.FormattedViews(),
			TimeAgo:    domain.FormatTimeAgo(v.CreatedAt, now),
			ChannelPic: channelPic,
		})
	}
	s.home = feed
	return s.home
}

// Remove deletes the video from the collection and the cached home
// projection, unconditionally. Playlists, comments and watch history
// referencing the ID are left untouched; callers that want a full
// purge go through the per-store removal hooks.
func (s *Service) Remove(videoID string) {
	kept := s.videos[:0]
	for _, v := range s.videos {
		if v.ID != videoID {
			kept = append(kept, v)
		}
	}
	s.videos = kept

	keptHome := s.home[:0]
	for _, h := range s.home {
		if h.ID != videoID {
			keptHome = append(keptHome, h)
		}
	}
	s.home = keptHome

	s.persist()
	s.notify.Notify(domain.SeveritySuccess, "Video removed")
}

// Open returns the watch-page aggregate for one video, incrementing
// its view counter by exactly one. The increment commits only when the
// owner still resolves. With an active session the view lands in watch
// history; anonymous views are not recorded.
func (s *Service) Open(videoID string) (*domain.CurrentVideo, error) {
	i := -1
	for idx := range s.videos {
		if s.videos[idx].ID == videoID {
			i = idx
			break
		}
	}
	if i < 0 {
		s.notify.Notify(domain.SeverityError, "Video not found")
		return nil, domain.ErrVideoNotFound
	}
	video := s.videos[i]

	owner, ok := s.users.UserByID(video.Owner)
	if !ok {
		s.notify.Notify(domain.SeverityError, "Video owner not found")
		return nil, domain.ErrOwnerMissing
	}

	s.videos[i].Views++
	s.persist()

	curr, hasSession := s.sessions.CurrentUser()
	isSubscribed := false
	if hasSession {
		isSubscribed = s.subs.IsSubscribed(curr.ID, owner.ID)
	}

	aggregate := &domain.CurrentVideo{
		Src:         video.VideoURL,
		Thumbnail:   video.Thumbnail,
		Title:       video.Title,
		Description: video.Description,
		Views:       s.videos[i].Views,
		UploadedAt:  video.CreatedAt,
		Likes:       0,
		Channel: domain.ChannelInfo{
			ID:           owner.ID,
			Name:         owner.Username,
			Subscribers:  s.subs.SubscriberCount(owner.ID),
			IsSubscribed: isSubscribed,
			Avatar:       owner.Avatar,
		},
	}

	if hasSession {
		s.history.Record(curr.ID, videoID)
	}
	return aggregate, nil
}

// VideoByID returns a copy of the video record.
func (s *Service) VideoByID(id string) (domain.Video, bool) {
	for _, v := range s.videos {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Video{}, false
}

// Videos returns a copy of the video collection.
func (s *Service) Videos() []domain.Video {
	return append([]domain.Video(nil), s.videos...)
}
