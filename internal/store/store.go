// Package store provides the persistent record store: a narrow get/set
// key-value abstraction over JSON documents, with a file backend for the
// application and an in-memory backend for tests and dev mode.
//
// Storage failures are never surfaced to callers as errors. A failed read
// reports a miss and a failed write reports false, both after logging; the
// worst case by design is an empty view or a dropped write.
package store

// Store is the durable key-value boundary. Load deserializes the value stored
// under key into out and reports whether anything usable was found; Save
// serializes value under key and reports whether the write stuck.
type Store interface {
	Load(key string, out interface{}) bool
	Save(key string, value interface{}) bool
}
