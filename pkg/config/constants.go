package config

const (
	EnvPrefix = "INSIGHTS"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv       = "INSIGHTS_APP_ENV"
	EnvPort         = "INSIGHTS_APP_PORT"
	EnvLogLevel     = "INSIGHTS_LOG_LEVEL"
	EnvMaxBodyBytes = "INSIGHTS_HTTP_MAX_BODY_BYTES"
	EnvCORSOrigins  = "INSIGHTS_HTTP_CORS_ORIGINS"
	EnvStaticRoot   = "INSIGHTS_STATIC_ROOT"
	EnvCacheEnabled = "INSIGHTS_RENDER_CACHE_ENABLED"
	EnvRedisURL     = "INSIGHTS_REDIS_URL"

	// Firebase values are read straight from the process environment at request time.
	EnvGoogleAPIKey      = "GOOGLE_API_KEY"
	EnvProjectID         = "PROJECT_ID"
	EnvMessagingSenderID = "FIREBASE_MESSAGING_SENDER_ID"
	EnvFirebaseAppID     = "FIREBASE_APP_ID"
	EnvFirebaseMeasureID = "FIREBASE_MEASUREMENT_ID"
)
