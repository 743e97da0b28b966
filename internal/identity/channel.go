package identity

import "github.com/AbdullahNaeem1090/vidflow-final/internal/domain"

// PlaceholderThumbnail stands in for a playlist preview whose first
// video no longer resolves, or whose sequence is empty.
const PlaceholderThumbnail = "/placeholder-thumbnail.png"

// Channel assembles the channel-page aggregate for one user: display
// identity, subscriber count, the caller's subscription state, every
// video the channel owns and every Public playlist. Pure read; it
// requires an active session for the subscription join.
func (s *Service) Channel(channelID string) (*domain.ChannelData, error) {
	if s.currUser == nil {
		return nil, domain.ErrNoActiveSession
	}
	channel, ok := s.userByID(channelID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	var videos []domain.ChannelVideo
	for _, v := range s.channel.videos.Videos() {
		if v.Owner != channelID {
			continue
		}
		videos = append(videos, domain.ChannelVideo{
			ID:         v.ID,
			Title:      v.Title,
			Thumbnail:  v.Thumbnail,
			Views:      v.FormattedViews(),
			UploadedAt: v.CreatedAt,
		})
	}

	var playlists []domain.PlaylistPreview
	for _, p := range s.channel.playlists.PublicByOwner(channelID) {
		thumb := PlaceholderThumbnail
		if len(p.Videos) > 0 {
			if first, ok := s.channel.videos.VideoByID(p.Videos[0]); ok {
				thumb = first.Thumbnail
			}
		}
		playlists = append(playlists, domain.PlaylistPreview{
			ID:         p.ID,
			Title:      p.Title,
			Thumbnail:  thumb,
			VideoCount: len(p.Videos),
		})
	}

	return &domain.ChannelData{
		Name:         channel.Username,
		Subscribers:  s.channel.subs.SubscriberCount(channelID),
		ProfilePic:   channel.Avatar,
		BannerImage:  "",
		IsSubscribed: s.channel.subs.IsSubscribed(s.currUser.ID, channelID),
		Videos:       videos,
		Playlists:    playlists,
	}, nil
}
