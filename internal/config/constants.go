package config

import "time"

// Defaults for optional settings
const (
	DefaultPort                  = 8080
	DefaultLogLevel              = "info"
	DefaultLogFormat             = "text"
	DefaultLogDir                = "logs"
	DefaultEnvironment           = "dev"
	DefaultDBDriver              = DriverSQLite
	DefaultSQLitePath            = "data/tornbot.db"
	DefaultDBMaxConns            = 10
	DefaultEncryptionKeyFile     = "data/fernet.key"
	DefaultTornAPIBase           = "https://api.torn.com"
	DefaultTornV2Base            = "https://api.torn.com/v2"
	DefaultTornRequestsPerMinute = 90
	DefaultSyncInterval          = time.Hour
	DefaultTimezone              = "Europe/London"
)

// Storage drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Error messages
const (
	ErrMsgInvalidPort         = "invalid PORT value"
	ErrMsgInvalidInt          = "invalid integer value for"
	ErrMsgInvalidDuration     = "invalid duration value for"
	ErrMsgAPIKeyRequired      = "API_KEY environment variable must be set for security"
	ErrMsgInvalidConfig       = "invalid configuration"
)
