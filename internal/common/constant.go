package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName carries a per-request correlation id.
const RequestIDHeaderName = "X-Request-Id"

// Names of the persisted session entries. They are independent on purpose:
// either one can go missing or rot without taking the other down.
const (
	SessionTokenKey = "token"
	SessionUserKey  = "user"
)
