package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names so
// the prefix only matters for unattributed fields.
const EnvPrefix = "REACHLY"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv        = "REACHLY_APP_ENV"
	EnvPort          = "REACHLY_APP_PORT"
	EnvBackendURL    = "REACHLY_BACKEND_URL"
	EnvRedisURL      = "REACHLY_REDIS_URL"
	EnvSessionSecret = "REACHLY_SESSION_JWT_SECRET"
	EnvSessionIssuer = "REACHLY_SESSION_JWT_ISSUER"
)
