// Package session provides the session registry for the 2048 game server.
//
// Manager keeps every live game in memory behind a sync.RWMutex. Session IDs
// are 4 hex characters generated with crypto/rand unless the caller supplies
// one, and lookups ignore case.
//
// Persistence:
//
// With a SessionPersistence attached, sessions are written on creation and
// whenever the service saves after a move. FilePersistence stores one JSON
// document per session holding the config id and the full GameState, so an
// in-progress board can be resumed after a restart. Expired sessions are
// evicted from memory only; their files stay on disk.
//
// Usage:
//
//	store, err := session.NewFilePersistence("sessions", configManager)
//	if err != nil {
//		log.Fatal(err)
//	}
//	manager := session.NewManagerWithPersistence(store)
//	if err := manager.LoadPersistedSessions(); err != nil {
//		log.Printf("Warning: %v", err)
//	}
//
//	sess, err := manager.Create("", config)
package session
