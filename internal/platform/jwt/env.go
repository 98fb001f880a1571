package jwtmw

// Environment variable keys used by the token generator and middleware.
const (
	// EnvKeyJWTSecret holds the HMAC signing secret.
	EnvKeyJWTSecret = "JWT_SECRET"

	// EnvKeyJWTExpirationHours holds the token lifetime in hours.
	EnvKeyJWTExpirationHours = "JWT_EXPIRATION_HOURS"
)
