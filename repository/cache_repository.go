package repository

// CacheRepository caches marshalled aggregate reports keyed by a digest
// of the normalized compare input. A miss returns ("", false).
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
