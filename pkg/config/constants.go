package config

const EnvPrefix = "TELAFOME"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv                = "TELAFOME_APP_ENV"
	EnvPort                  = "TELAFOME_APP_PORT"
	EnvMasterSheetID         = "TELAFOME_MASTER_SHEET_ID"
	EnvSheetsCredentialsJSON = "TELAFOME_GOOGLE_CREDENTIALS_JSON"
	EnvSheetsClientEmail     = "TELAFOME_GOOGLE_CLIENT_EMAIL"
	EnvSheetsPrivateKey      = "TELAFOME_GOOGLE_PRIVATE_KEY"
	EnvRedisURL              = "TELAFOME_REDIS_URL"
)
