package config

// Environment names
const (
	EnvDev         = "dev"
	EnvDevelopment = "development"
	EnvProduction  = "prod"
)

// MinJWTSecretLength is the shortest signing secret accepted
const MinJWTSecretLength = 16

// Insecure placeholder values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleJWTSecret  = "generate_with_openssl_rand_hex_32"
)

// Error messages
const (
	ErrMsgParseEnvFailed         = "failed to parse environment: %w"
	ErrMsgJWTSecretMissing       = "JWT_SECRET environment variable must be set for security"
	ErrMsgJWTSecretTooShortFmt   = "JWT_SECRET must be at least %d characters"
	ErrMsgInvalidPortFmt         = "invalid PORT value: %d"
	ErrMsgInvalidMaxConnsFmt     = "invalid DB_MAX_CONNS value: %d"
	ErrMsgInvalidTokenTTLFmt     = "invalid TOKEN_TTL value: %s"
	ErrMsgInvalidRequestLimitFmt = "invalid MAX_REQUEST_BYTES value: %d"
	ErrMsgInvalidRateLimitFmt    = "invalid rate limit: %d requests per %s"
)
