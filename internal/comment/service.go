// Package comment owns the comment collection.
package comment

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/AbdullahNaeem1090/vidflow-final/internal/domain"
)

const docVersion = 1

type commentDocument struct {
	Version  int              `json:"version"`
	Comments []domain.Comment `json:"comments"`
}

// Service is the comment store.
type Service struct {
	store  domain.BlobStore
	notify domain.Notifier
	logger *slog.Logger

	sessions domain.SessionDirectory
	users    domain.UserDirectory

	comments []domain.Comment
}

// NewService loads the persisted comment collection, falling back to
// seed when no document exists.
func NewService(store domain.BlobStore, notify domain.Notifier, logger *slog.Logger, sessions domain.SessionDirectory, users domain.UserDirectory, seed []domain.Comment) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{store: store, notify: notify, logger: logger, sessions: sessions, users: users}
	s.load(seed)
	return s
}

func (s *Service) load(seed []domain.Comment) {
	data, ok := s.store.Load(domain.KeyComments)
	if !ok {
		s.comments = append([]domain.Comment(nil), seed...)
		return
	}
	var doc commentDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Error("failed to decode comment document, using seed", "error", err)
		s.comments = append([]domain.Comment(nil), seed...)
		return
	}
	s.comments = doc.Comments
}

func (s *Service) persist() {
	data, err := json.Marshal(commentDocument{Version: docVersion, Comments: s.comments})
	if err != nil {
		s.logger.Error("failed to encode comment document", "error", err)
		return
	}
	if err := s.store.Save(domain.KeyComments, data); err != nil {
		s.logger.Error("failed to save comment document", "error", err)
	}
}

// Add appends a comment written by the session user. The claimed
// author must be the session user and the body must not be blank.
func (s *Service) Add(videoID, authorID, text string) error {
	curr, ok := s.sessions.CurrentUser()
	if !ok {
		s.notify.Notify(domain.SeverityError, "You must be logged in to comment")
		return domain.ErrNoActiveSession
	}
	if curr.ID != authorID {
		s.notify.Notify(domain.SeverityError, "Invalid user")
		return domain.ErrAuthorMismatch
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		s.notify.Notify(domain.SeverityError, "Comment cannot be empty")
		return domain.ErrEmptyComment
	}

	s.comments = append(s.comments, domain.Comment{
		ID:      uuid.NewString(),
		Author:  authorID,
		VideoID: videoID,
		Text:    trimmed,
	})
	s.persist()

	s.notify.Notify(domain.SeveritySuccess, "Comment added!")
	return nil
}

// Remove deletes a comment; only its author may do so.
func (s *Service) Remove(commentID, requesterID string) error {
	i := -1
	for idx := range s.comments {
		if s.comments[idx].ID == commentID {
			i = idx
			break
		}
	}
	if i < 0 {
		s.notify.Notify(domain.SeverityError, "Comment not found")
		return domain.ErrCommentNotFound
	}
	if s.comments[i].Author != requesterID {
		s.notify.Notify(domain.SeverityError, "You can only delete your own comments")
		return domain.ErrNotAuthor
	}

	s.comments = append(s.comments[:i], s.comments[i+1:]...)
	s.persist()

	s.notify.Notify(domain.SeveritySuccess, "Comment deleted")
	return nil
}

// ListForVideo returns the video's comments joined with their author
// identities. A gone author degrades to a placeholder identity rather
// than dropping the comment.
func (s *Service) ListForVideo(videoID string) []domain.CommentWithAuthor {
	var out []domain.CommentWithAuthor
	for _, c := range s.comments {
		if c.VideoID != videoID {
			continue
		}
		author := domain.CommentAuthor{Username: "Unknown User", Avatar: "/user.png"}
		if u, ok := s.users.UserByID(c.Author); ok {
			author = domain.CommentAuthor{ID: u.ID, Username: u.Username, Avatar: u.Avatar}
		}
		out = append(out, domain.CommentWithAuthor{
			ID:      c.ID,
			Text:    c.Text,
			VideoID: c.VideoID,
			Author:  author,
		})
	}
	return out
}

// RemoveForVideo silently purges every comment on the video. Purge
// hook for external cascade logic, mirroring the playlist one.
func (s *Service) RemoveForVideo(videoID string) {
	kept := s.comments[:0]
	for _, c := range s.comments {
		if c.VideoID != videoID {
			kept = append(kept, c)
		}
	}
	s.comments = kept
	s.persist()
}
