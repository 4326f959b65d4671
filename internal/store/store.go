// Package store provides the persistence substrate: an opaque key→string
// store plus a repository that serializes the year-keyed application data
// into it. Absent or malformed stored data is treated as "no data" and a
// fresh default is synthesized; storage never blocks an import.
package store

// Store is the opaque string key-value store everything is persisted in.
type Store interface {
	// Get returns the value for key, or ok=false when the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Set writes the value for key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error

	// Close releases the underlying resources.
	Close() error
}
