// Package common contains shared constants and small helpers used across
// marketcli components.
package common

// AuthTokenHeaderName is the HTTP header the marketplace backend expects the
// bearer token in on every authenticated request.
const AuthTokenHeaderName = "auth-token"

// TokenStorageKey is the key the bearer token is persisted under in the local
// credentials store. It survives restarts and is removed on logout.
const TokenStorageKey = "authToken"

// PlaceholderPicture is substituted when a product or profile record carries
// no picture filename, so asset URLs never point at an empty path.
const PlaceholderPicture = "placeholder.png"
