// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns run in a fixed order before a request reaches
// a handler: per-client rate limiting, request tracing, access logging,
// locale negotiation, bearer authentication and response compression.
// Every outcome is written as a localized {success, message, data} envelope.
package http
