// Package server implements the dev/demo admin backend for ggadmin.
//
// The backend serves record edit forms over HTTP, validates submissions, and
// pushes validation results to WebSocket subscribers. The push stream is the
// explicit signal the client's tab UI prefers over its fixed-delay error
// scan.
//
// Records live in an in-memory store seeded with sample GoGevgelija content
// (listings, events, promotions, blog posts, categories). Validation mirrors
// the original admin's rule that translated fields are required in every
// configured language.
//
// # Endpoints
//
//	GET  /api/forms        record catalog, grouped into sections
//	GET  /api/forms/{id}   rendered edit form for one record
//	POST /api/forms/{id}   submit values; responds with a validation result
//	GET  /api/events       WebSocket stream of validation results
//
// The server announces itself over mDNS as a _ggadmin._tcp service so
// clients on the same LAN can find it without configuration.
package server
