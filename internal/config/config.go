package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all HTTP server related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ImageDir is the directory served under /images. Empty disables static serving.
	ImageDir string `mapstructure:"image_dir"`
	// ShutdownTimeoutSeconds bounds the graceful drain of in-flight
	// requests when the server stops.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// DatabaseConfig contains all document store related configuration settings.
type DatabaseConfig struct {
	// URL is the MongoDB connection string.
	URL string `mapstructure:"url" validate:"required"`
	// Name is the database the shop collections live in.
	Name string `mapstructure:"name" validate:"required"`
	// TimeoutSeconds bounds every store call. Exhausting it surfaces as a
	// timeout error distinct from other store failures.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"required,gt=0"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	// JWTSecret signs bearer tokens. It has no default: deployments must
	// supply it externally (SHOP_AUTH_JWT_SECRET).
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`
	// TokenLifetimeSeconds is how long an issued token stays valid.
	TokenLifetimeSeconds int `mapstructure:"token_lifetime_seconds" validate:"required,gt=0"`
	// BcryptCost is the work factor applied when hashing passwords.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"required,gte=4,lte=31"`
}
