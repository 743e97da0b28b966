// Package search scans the video and user collections with
// case-insensitive substring predicates. No index is maintained; the
// collections are small enough that a full scan per query is fine.
package search

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/AbdullahNaeem1090/vidflow-final/internal/domain"
)

// Options tunes query behavior.
type Options struct {
	// PageSize is the fixed page length for Find.
	PageSize int

	// SuggestLimit caps each suggestion shortlist.
	SuggestLimit int

	// MinQueryLength is the shortest query Suggest acts on.
	MinQueryLength int
}

// DefaultOptions returns the stock limits.
func DefaultOptions() Options {
	return Options{PageSize: 12, SuggestLimit: 5, MinQueryLength: 2}
}

// Service answers suggestion and search queries over the video and
// user collections.
type Service struct {
	opts   Options
	videos domain.VideoDirectory
	users  domain.UserDirectory
	logger *slog.Logger
}

// NewService creates a search service over the given directories.
func NewService(opts Options, videos domain.VideoDirectory, users domain.UserDirectory, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultOptions().PageSize
	}
	if opts.SuggestLimit <= 0 {
		opts.SuggestLimit = DefaultOptions().SuggestLimit
	}
	if opts.MinQueryLength <= 0 {
		opts.MinQueryLength = DefaultOptions().MinQueryLength
	}
	return &Service{opts: opts, videos: videos, users: users, logger: logger}
}

// matchVideos returns video matches on title or description, ranked by
// view count descending. Ties keep collection order.
func (s *Service) matchVideos(query string) []domain.VideoResult {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []domain.VideoResult
	for _, v := range s.videos.Videos() {
		if !strings.Contains(strings.ToLower(v.Title), q) &&
			!strings.Contains(strings.ToLower(v.Description), q) {
			continue
		}
		owner := domain.ResultOwner{Username: "Unknown", Avatar: "/user.png"}
		if u, ok := s.users.UserByID(v.Owner); ok {
			owner = domain.ResultOwner{ID: u.ID, Username: u.Username, Avatar: u.Avatar}
		}
		out = append(out, domain.VideoResult{
			ID:        v.ID,
			Title:     v.Title,
			Thumbnail: v.Thumbnail,
			Views:     v.Views,
			Owner:     owner,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	return out
}

// matchUsers returns user matches on username or email, in collection
// order.
func (s *Service) matchUsers(query string) []domain.UserResult {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []domain.UserResult
	for _, u := range s.users.Users() {
		if !strings.Contains(strings.ToLower(u.Username), q) &&
			!strings.Contains(strings.ToLower(u.Email), q) {
			continue
		}
		out = append(out, domain.UserResult{ID: u.ID, Username: u.Username, Avatar: u.Avatar})
	}
	return out
}

// Suggest returns the typeahead shortlists: the top videos by view
// count and the first users in collection order. Queries shorter than
// the minimum clear the suggestions instead.
func (s *Service) Suggest(query string) domain.Suggestions {
	if len(strings.TrimSpace(query)) < s.opts.MinQueryLength {
		return domain.Suggestions{}
	}

	videos := s.matchVideos(query)
	if len(videos) > s.opts.SuggestLimit {
		videos = videos[:s.opts.SuggestLimit]
	}
	users := s.matchUsers(query)
	if len(users) > s.opts.SuggestLimit {
		users = users[:s.opts.SuggestLimit]
	}
	return domain.Suggestions{Videos: videos, Users: users}
}

// Find runs a paginated search. For ScopeAll the page is cut from the
// combined videos-then-users sequence and split back into per-kind
// lists, so a page boundary can land anywhere in either kind. Empty
// queries return nil.
func (s *Service) Find(query string, scope domain.SearchScope, page int) *domain.SearchResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	if page < 1 {
		page = 1
	}

	var videos []domain.VideoResult
	var users []domain.UserResult
	if scope == domain.ScopeAll || scope == domain.ScopeVideos {
		videos = s.matchVideos(query)
	}
	if scope == domain.ScopeAll || scope == domain.ScopeUsers {
		users = s.matchUsers(query)
	}

	totalVideos := len(videos)
	totalUsers := len(users)
	total := totalVideos + totalUsers
	totalPages := (total + s.opts.PageSize - 1) / s.opts.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	var pageVideos []domain.VideoResult
	var pageUsers []domain.UserResult
	switch scope {
	case domain.ScopeVideos:
		pageVideos = paginate(videos, page, s.opts.PageSize)
	case domain.ScopeUsers:
		pageUsers = paginate(users, page, s.opts.PageSize)
	default:
		// Combined sequence: all videos first, then all users.
		start := (page - 1) * s.opts.PageSize
		end := start + s.opts.PageSize
		if start > total {
			start = total
		}
		if end > total {
			end = total
		}
		for i := start; i < end; i++ {
			if i < totalVideos {
				pageVideos = append(pageVideos, videos[i])
			} else {
				pageUsers = append(pageUsers, users[i-totalVideos])
			}
		}
	}

	s.logger.Debug("search", "query", query, "scope", scope, "page", page, "total", total)
	return &domain.SearchResult{
		Query:       query,
		Videos:      pageVideos,
		Users:       pageUsers,
		TotalVideos: totalVideos,
		TotalUsers:  totalUsers,
		Page:        page,
		TotalPages:  totalPages,
	}
}

func paginate[T any](items []T, page, perPage int) []T {
	start := (page - 1) * perPage
	if start >= len(items) {
		return nil
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
