package config

// EnvPrefix namespaces every environment variable read by Load.
const EnvPrefix = "SHOPFRONT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv            = "SHOPFRONT_APP_ENV"
	EnvLogLevel          = "SHOPFRONT_LOG_LEVEL"
	EnvAPIBaseURL        = "SHOPFRONT_API_BASE_URL"
	EnvAPIRequestTimeout = "SHOPFRONT_API_REQUEST_TIMEOUT"
	EnvStatePath         = "SHOPFRONT_STATE_PATH"
)
