package common

// SessionCookieName is the cookie that carries the session token between
// the browser and the gateway.
const SessionCookieName = "auth-token"

// AuthorizationHeader carries the bearer token on requests proxied to a
// remote identity service.
const AuthorizationHeader = "Authorization"
