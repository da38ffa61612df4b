// Package api implements the HTTP REST surface of the Estate API.
//
// This package provides:
//   - CRUD endpoints over the users, listings, gallery, and blog collections
//   - A CORS origin allow-list enforced before any handler runs
//   - Middleware stack (request ID, logging, recovery, body size limit)
//   - A uniform JSON error envelope across all routes
//
// # Architecture
//
// Every route maps to exactly one repository call; there is no business logic
// between the HTTP boundary and the store. Repositories are injected through
// interfaces, so handlers are tested against in-memory doubles without a
// running MongoDB.
//
// # Error handling
//
// All failures funnel through one envelope: {status, code, message}. Unknown
// IDs on lookups return 404, malformed IDs and bodies return 400, store
// failures return 500. The one deliberate exception is listing deletion,
// which stays idempotent and reports a deleted count of zero instead of 404.
package api
