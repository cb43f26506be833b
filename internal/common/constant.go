// Package common contains constants shared by EduHub client components.
package common

const (
	// AuthorizationHeaderName carries the bearer token on authenticated calls.
	AuthorizationHeaderName = "Authorization"
	// BearerPrefix precedes the token inside the Authorization header.
	BearerPrefix = "Bearer "
	// RequestIDHeaderName tags every outbound API call for server-side tracing.
	RequestIDHeaderName = "X-Request-ID"

	// StorageKeyToken and StorageKeyUser name the two persisted session entries.
	StorageKeyToken = "adminToken"
	StorageKeyUser  = "adminUser"
)

// BearerValue formats token as an Authorization header value.
func BearerValue(token string) string {
	return BearerPrefix + token
}
