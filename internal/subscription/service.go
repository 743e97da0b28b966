// Package subscription owns the subscriber/channel relationship
// collection. Presence is toggled, never updated in place.
package subscription

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/AbdullahNaeem1090/vidflow-final/internal/domain"
)

const docVersion = 1

type subscriptionDocument struct {
	Version       int                   `json:"version"`
	Subscriptions []domain.Subscription `json:"subscriptions"`
}

// Service is the subscription store.
type Service struct {
	store  domain.BlobStore
	logger *slog.Logger

	users domain.UserDirectory

	subscriptions []domain.Subscription
}

// NewService loads the persisted subscription collection, falling back
// to seed when no document exists.
func NewService(store domain.BlobStore, logger *slog.Logger, users domain.UserDirectory, seed []domain.Subscription) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{store: store, logger: logger, users: users}
	s.load(seed)
	return s
}

func (s *Service) load(seed []domain.Subscription) {
	data, ok := s.store.Load(domain.KeySubscriptions)
	if !ok {
		s.subscriptions = append([]domain.Subscription(nil), seed...)
		return
	}
	var doc subscriptionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Error("failed to decode subscription document, using seed", "error", err)
		s.subscriptions = append([]domain.Subscription(nil), seed...)
		return
	}
	s.subscriptions = doc.Subscriptions
}

func (s *Service) persist() {
	data, err := json.Marshal(subscriptionDocument{Version: docVersion, Subscriptions: s.subscriptions})
	if err != nil {
		s.logger.Error("failed to encode subscription document", "error", err)
		return
	}
	if err := s.store.Save(domain.KeySubscriptions, data); err != nil {
		s.logger.Error("failed to save subscription document", "error", err)
	}
}

// Toggle flips the relationship for the (subscriber, channel) pair:
// removes it when present, inserts it when absent. Applying it twice
// restores the original state.
func (s *Service) Toggle(subscriberID, channelID string) {
	for i, sub := range s.subscriptions {
		if sub.Subscriber == subscriberID && sub.SubscribedTo == channelID {
			s.subscriptions = append(s.subscriptions[:i], s.subscriptions[i+1:]...)
			s.persist()
			s.logger.Debug("unsubscribed", "subscriber", subscriberID, "channel", channelID)
			return
		}
	}

	s.subscriptions = append(s.subscriptions, domain.Subscription{
		ID:           uuid.NewString(),
		Subscriber:   subscriberID,
		SubscribedTo: channelID,
	})
	s.persist()
	s.logger.Debug("subscribed", "subscriber", subscriberID, "channel", channelID)
}

// IsSubscribed reports whether the pair has a relationship.
func (s *Service) IsSubscribed(subscriberID, channelID string) bool {
	for _, sub := range s.subscriptions {
		if sub.Subscriber == subscriberID && sub.SubscribedTo == channelID {
			return true
		}
	}
	return false
}

// SubscriberCount returns the number of inbound relationships.
func (s *Service) SubscriberCount(channelID string) int {
	count := 0
	for _, sub := range s.subscriptions {
		if sub.SubscribedTo == channelID {
			count++
		}
	}
	return count
}

// SubscriptionsFor returns one entry per distinct channel the user
// subscribes to, silently dropping channels whose account is gone.
func (s *Service) SubscriptionsFor(subscriberID string) []domain.SubscribedChannel {
	seen := make(map[string]bool)
	var channels []domain.SubscribedChannel
	for _, sub := range s.subscriptions {
		if sub.Subscriber != subscriberID || seen[sub.SubscribedTo] {
			continue
		}
		seen[sub.SubscribedTo] = true

		channel, ok := s.users.UserByID(sub.SubscribedTo)
		if !ok {
			continue
		}
		avatar := channel.Avatar
		if avatar == "" {
			avatar = "/user.png"
		}
		channels = append(channels, domain.SubscribedChannel{
			ID:          channel.ID,
			Name:        channel.Username,
			Subscribers: s.SubscriberCount(channel.ID),
			Description: "",
			Avatar:      avatar,
		})
	}
	return channels
}
