package structs

import "time"

type Config struct {
	Server   *ServerConfig
	Cors     *CorsConfig
	Catalog  *CatalogConfig
	Auth     *AuthConfig
	Media    *MediaConfig
	Database *DatabaseConfig
	Cache    *CacheConfig
	Email    *EmailConfig
}

type ServerConfig struct {
	AppName        string        // BD StoneX
	Environment    string        // development, production
	Port           string        // :8082
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
	MaxBodyBytes   int64         // uploads included
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type CatalogConfig struct {
	Driver        string // file, postgres
	FilePath      string
	FeaturedLimit int
	RelatedLimit  int
}

type AuthConfig struct {
	Password      string // plain secret, compared after trimming
	PasswordHash  string // argon2id, wins over Password when set
	SessionSecret string // empty keeps the legacy "1" cookie value
	SessionTTL    time.Duration
	CookieDomain  string
}

type MediaConfig struct {
	CloudName    string
	UploadPreset string
	ApiKey       string
	ApiSecret    string
	BaseURL      string
	Timeout      time.Duration
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxLifetime time.Duration
	MaxIdleTime time.Duration
	SlowQuery   time.Duration
}

type CacheConfig struct {
	Enabled         bool
	Address         string
	Username        string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	CatalogTTL      time.Duration
}

type EmailConfig struct {
	ApiKey string
	From   string
	Inbox  string
}
