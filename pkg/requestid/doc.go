// Package requestid attaches a correlation identifier to every HTTP request.
//
// Middleware reuses a client supplied X-Request-ID header when it passes
// HeaderRule and otherwise generates a UUIDv7. The identifier is stored in the
// request context and echoed in the response header. LoggerExtractor plugs it
// into logger.WithContextExtractors so every record logged with the request
// context carries a request_id attribute.
package requestid
