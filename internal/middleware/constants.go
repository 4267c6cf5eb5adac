package middleware

// HTTP header names and schemes
const (
	// HeaderAuthorization carries the bearer token
	HeaderAuthorization = "Authorization"

	// SchemeBearer is the only accepted authorization scheme
	SchemeBearer = "Bearer"

	// HeaderWWWAuthenticate is set on 401 responses
	HeaderWWWAuthenticate = "WWW-Authenticate"
)

// Response messages. Every token failure answers with the same text so the
// root cause is never exposed to the caller.
const (
	ErrMsgInvalidCredentials = "Invalid or missing credentials"
	ErrMsgAuthUnavailable    = "Something went wrong"
)

// Log Messages
const (
	// LogMsgBearerMissing indicates the request had no usable Authorization header
	LogMsgBearerMissing = "Bearer token missing"

	// LogMsgBearerRejected indicates the token failed verification or the account is gone
	LogMsgBearerRejected = "Bearer token rejected"

	// LogMsgAuthLookupFailed indicates authentication could not be completed
	LogMsgAuthLookupFailed = "Authentication lookup failed"
)
