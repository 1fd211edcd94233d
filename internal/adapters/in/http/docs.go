// Package http is the inbound REST adapter.
//
// Server translates the API models of internal/generated/servers into
// commands and queries, and maps domain errors to status codes:
//
//   - errs.ErrObjectNotFound: 404
//   - episode.ErrEpisodeTerminated, episode.ErrShipmentAlreadyPacked: 409
//   - invalid, out of range or missing values: 400
//   - anything else: 500, logged with slog
//
// NewRouter mounts the server next to /health, /api/openapi.json and /swagger/*.
package http
