package domain

// BlobStore is the durable key-value provider the stores persist
// through. Each store writes one named JSON document holding only its
// canonical collection; derived views are never persisted.
type BlobStore interface {
	// Load returns the document stored under key, or false if absent.
	Load(key string) ([]byte, bool)

	// Save durably stores the document under key.
	Save(key string, data []byte) error

	Close() error
}

// Document keys, one per store. They match the storage names of the
// browser build so an exported state dump stays readable.
const (
	KeyAuth          = "auth-storage"
	KeyVideos        = "video-storage"
	KeyPlaylists     = "playlist-storage"
	KeySubscriptions = "subscriptions-storage"
	KeyComments      = "comments-storage"
	KeyWatchHistory  = "watch-history-storage"
)
