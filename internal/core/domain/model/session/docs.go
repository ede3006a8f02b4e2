// Package session models an editing session: the exclusive owner of one order
// Draft and the catalog Snapshot loaded for it.
//
// A session serializes every operation on its draft. Once it is closed, by a
// successful save, a discard, an expiry sweep or eviction from the registry,
// every further operation fails with ErrSessionClosed and leaves the draft as it was.
package session
