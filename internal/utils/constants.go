package utils

// HTTP Header Constants
const (
	// Standard HTTP Headers
	HeaderContentType  = "Content-Type"
	HeaderCacheControl = "Cache-Control"

	// Request/Response Tracking Headers
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"

	// Client IP Headers
	HeaderXForwardedFor = "X-Forwarded-For"

	// CORS Headers
	HeaderAccessControlAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAccessControlAllowMethods = "Access-Control-Allow-Methods"
	HeaderAccessControlAllowHeaders = "Access-Control-Allow-Headers"
)

// HTTP Header Values
const (
	ContentTypeJSON = "application/json"

	CORSAllowOriginAll  = "*"
	CORSAllowMethodsAll = "POST, GET, OPTIONS, PUT, DELETE"
	CORSAllowHeadersStd = "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-Request-ID, X-Correlation-ID"
)
