// Package api defines the response envelope the backend wraps every payload
// in, offset-pagination metadata, and the error taxonomy surfaced to
// consuming applications. The decode helpers turn HTTP responses into typed
// envelopes without ever silently dropping a record: entity-level decode
// failures propagate as a DecodingError.
//
// Transport policy (sessions, retries, caching) is explicitly not this
// package's concern; it belongs to the apps' network layers.
package api
