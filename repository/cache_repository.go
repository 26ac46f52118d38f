package repository

// CacheRepository is a flat string key-value store. Get reports ok=false for an
// absent key; err is reserved for backend failures.
type CacheRepository interface {
	Get(key string) (value string, ok bool, err error)
	Set(key string, value string) error
}
