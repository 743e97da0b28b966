// Package identity owns the user collection and the single active
// session. The session carries a denormalized snapshot of its user
// record; every user mutation rebuilds that snapshot from the just
// updated record in the same step, so the two can never diverge.
package identity

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/AbdullahNaeem1090/vidflow-final/internal/domain"
)

const docVersion = 1

// DefaultAvatar is assigned to freshly registered accounts.
const DefaultAvatar = "/user.png"

// authDocument is the persisted shape: the canonical user collection
// plus the session flag and snapshot.
type authDocument struct {
	Version    int           `json:"version"`
	Users      []domain.User `json:"users"`
	CurrUser   *domain.User  `json:"currUser,omitempty"`
	IsLoggedIn bool          `json:"isLoggedIn"`
}

// ProfileUpdate carries the optional profile fields; nil means keep.
type ProfileUpdate struct {
	Username  *string
	AvatarURL *string
}

// channelSources are the read handles a channel page joins across.
// They are bound once at startup, after all stores exist.
type channelSources struct {
	videos    domain.VideoDirectory
	playlists domain.PlaylistDirectory
	subs      domain.SubscriptionDirectory
}

// Service is the identity store.
type Service struct {
	store  domain.BlobStore
	notify domain.Notifier
	logger *slog.Logger

	users    []domain.User
	currUser *domain.User
	loggedIn bool

	channel channelSources
}

// NewService loads the persisted user collection, falling back to seed
// when no document exists.
func NewService(store domain.BlobStore, notify domain.Notifier, logger *slog.Logger, seed []domain.User) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{store: store, notify: notify, logger: logger}
	s.load(seed)
	return s
}

// BindChannelSources wires the read handles the channel aggregate
// needs. Called once during startup wiring; the stores involved are
// constructed after this one.
func (s *Service) BindChannelSources(videos domain.VideoDirectory, playlists domain.PlaylistDirectory, subs domain.SubscriptionDirectory) {
	s.channel = channelSources{videos: videos, playlists: playlists, subs: subs}
}

func (s *Service) load(seed []domain.User) {
	data, ok := s.store.Load(domain.KeyAuth)
	if !ok {
		s.users = append([]domain.User(nil), seed...)
		return
	}
	var doc authDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Error("failed to decode auth document, using seed", "error", err)
		s.users = append([]domain.User(nil), seed...)
		return
	}
	s.users = doc.Users
	if doc.IsLoggedIn && doc.CurrUser != nil {
		// Re-derive the snapshot from the authoritative collection in
		// case the persisted copy predates a profile update.
		if u, ok := s.userByID(doc.CurrUser.ID); ok {
			s.setSession(u.ID)
		} else {
			s.currUser = doc.CurrUser
			s.loggedIn = true
		}
	}
}

func (s *Service) persist() {
	doc := authDocument{
		Version:    docVersion,
		Users:      s.users,
		CurrUser:   s.currUser,
		IsLoggedIn: s.loggedIn,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		s.logger.Error("failed to encode auth document", "error", err)
		return
	}
	if err := s.store.Save(domain.KeyAuth, data); err != nil {
		s.logger.Error("failed to save auth document", "error", err)
	}
}

// setSession rebuilds the session snapshot from the authoritative
// record. Must be called inside the same mutation step as any change
// to the user collection while that user is logged in.
func (s *Service) setSession(userID string) {
	if u, ok := s.userByID(userID); ok {
		snapshot := u
		s.currUser = &snapshot
		s.loggedIn = true
	}
}

func (s *Service) userByID(id string) (domain.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *Service) userIndex(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

// Register creates an account and activates a session for it. The
// email address must be unique across the collection.
func (s *Service) Register(username, email, password string) error {
	for _, u := range s.users {
		if u.Email == email {
			s.notify.Notify(domain.SeverityError, "User already exists")
			return domain.ErrDuplicateUser
		}
	}

	user := domain.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		Password: password,
		Avatar:   DefaultAvatar,
	}
	s.users = append(s.users, user)
	s.setSession(user.ID)
	s.persist()

	s.logger.Info("registered user", "userID", user.ID)
	s.notify.Notify(domain.SeveritySuccess, "Account created successfully!")
	return nil
}

// Login activates a session for the account matching both email and
// password. A failed attempt leaves the session untouched.
func (s *Service) Login(email, password string) error {
	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			s.setSession(u.ID)
			s.persist()
			s.logger.Info("user logged in", "userID", u.ID)
			s.notify.Notify(domain.SeveritySuccess, "Welcome back, "+u.Username+"!")
			return nil
		}
	}
	s.notify.Notify(domain.SeverityError, "Invalid credentials")
	return domain.ErrInvalidCredentials
}

// Logout clears the session unconditionally.
func (s *Service) Logout() {
	s.currUser = nil
	s.loggedIn = false
	s.persist()
	s.notify.Notify(domain.SeveritySuccess, "Logged out successfully")
}

// UpdateProfile applies the provided fields to the session user's
// record and rebuilds the session snapshot in the same step.
func (s *Service) UpdateProfile(update ProfileUpdate) error {
	if s.currUser == nil {
		s.notify.Notify(domain.SeverityError, "No user logged in")
		return domain.ErrNoActiveSession
	}
	i := s.userIndex(s.currUser.ID)
	if i < 0 {
		s.notify.Notify(domain.SeverityError, "Failed to update profile")
		return domain.ErrUserNotFound
	}

	if update.Username != nil {
		s.users[i].Username = *update.Username
	}
	if update.AvatarURL != nil {
		s.users[i].Avatar = *update.AvatarURL
	}
	s.setSession(s.users[i].ID)
	s.persist()

	s.notify.Notify(domain.SeveritySuccess, "Profile updated successfully")
	return nil
}

// ChangePassword replaces the session user's password after verifying
// the current one, rebuilding the snapshot in the same step.
func (s *Service) ChangePassword(currentPassword, newPassword string) error {
	if s.currUser == nil {
		s.notify.Notify(domain.SeverityError, "No user logged in")
		return domain.ErrNoActiveSession
	}
	i := s.userIndex(s.currUser.ID)
	if i < 0 {
		s.notify.Notify(domain.SeverityError, "Failed to change password")
		return domain.ErrUserNotFound
	}
	if s.users[i].Password != currentPassword {
		s.notify.Notify(domain.SeverityError, "Current password is incorrect")
		return domain.ErrPasswordMismatch
	}

	s.users[i].Password = newPassword
	s.setSession(s.users[i].ID)
	s.persist()

	s.notify.Notify(domain.SeveritySuccess, "Password changed successfully")
	return nil
}

// CurrentUser returns a copy of the session snapshot.
func (s *Service) CurrentUser() (domain.User, bool) {
	if s.currUser == nil {
		return domain.User{}, false
	}
	return *s.currUser, true
}

// LoggedIn reports whether a session is active.
func (s *Service) LoggedIn() bool {
	return s.loggedIn
}

// UserByID returns a copy of the user record.
func (s *Service) UserByID(id string) (domain.User, bool) {
	return s.userByID(id)
}

// Users returns a copy of the user collection.
func (s *Service) Users() []domain.User {
	return append([]domain.User(nil), s.users...)
}
