// Package http is the REST transport of the codec server.
//
// Routes under /api encode messages into rendered fractals, decode uploaded
// carriers and serve stored images with their metadata. Middleware adds a
// trace ID, access logs and gzip for JSON and text. Upload routes also
// enforce a body size limit and, when a hash key is configured, check the
// HashSHA256 header against the raw body.
package http
