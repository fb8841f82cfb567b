package config

import (
	"stonex_server/structs"
	"sync"
	"time"
)

const (
	// upper bounds; lower values are allowed for tighter deployments
	maxFeatured   = 3
	maxSessionTTL = 2 * time.Hour
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = Load()
	})
	return configInstance
}

// Load reads a fresh config from the environment, bypassing the singleton
func Load() *structs.Config {
	return &structs.Config{
		Server: &structs.ServerConfig{
			AppName:        getEnvAsString("APP_NAME", "BD StoneX"),
			Environment:    getEnvFirst("development", "APP_ENV", "NODE_ENV"),
			Port:           getEnvAsString("APP_PORT", ":8082"),
			ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
			WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 60*time.Second),
			IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
			MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			MaxBodyBytes:   int64(getEnvAsInt("SERVER_MAX_BODY_BYTES", 50<<20)),
		},
		Cors: &structs.CorsConfig{
			AllowedOrigins:   getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),
			AllowedMethods:   getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept"}),
			ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length", "Content-Disposition"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
			MaxAge:           getEnvAsInt("CORS_MAX_AGE", 600),
		},
		Catalog: &structs.CatalogConfig{
			Driver:        getEnvAsString("CATALOG_DRIVER", "file"),
			FilePath:      getEnvAsString("CATALOG_FILE", "data/granite.json"),
			FeaturedLimit: getEnvAsIntInRange("CATALOG_FEATURED_LIMIT", maxFeatured, 1, maxFeatured),
			RelatedLimit:  getEnvAsInt("CATALOG_RELATED_LIMIT", 3),
		},
		Auth: &structs.AuthConfig{
			Password:      getEnvFirst("", "ADMIN_PASSWORD", "NEXT_PUBLIC_ADMIN_PASSWORD"),
			PasswordHash:  getEnvAsString("ADMIN_PASSWORD_HASH", ""),
			SessionSecret: getEnvAsString("AUTH_SESSION_SECRET", ""),
			SessionTTL:    getEnvAsDurationInRange("AUTH_SESSION_TTL", maxSessionTTL, maxSessionTTL),
			CookieDomain:  getEnvAsString("AUTH_COOKIE_DOMAIN", ""),
		},
		Media: &structs.MediaConfig{
			CloudName:    getEnvFirst("", "NEXT_PUBLIC_CLOUDINARY_CLOUD_NAME", "CLOUDINARY_CLOUD_NAME"),
			UploadPreset: getEnvFirst("", "NEXT_PUBLIC_CLOUDINARY_UPLOAD_PRESET", "CLOUDINARY_UPLOAD_PRESET"),
			ApiKey:       getEnvAsString("CLOUDINARY_API_KEY", ""),
			ApiSecret:    getEnvAsString("CLOUDINARY_API_SECRET", ""),
			BaseURL:      getEnvAsString("CLOUDINARY_API_BASE_URL", "https://api.cloudinary.com/v1_1"),
			Timeout:      getEnvAsTimeDuration("MEDIA_TIMEOUT", 30*time.Second),
		},
		Database: &structs.DatabaseConfig{
			Host:        getEnvAsString("DB_HOST", "localhost"),
			Port:        getEnvAsInt("DB_PORT", 5432),
			User:        getEnvAsString("DB_USER", "postgres"),
			Password:    getEnvAsString("DB_PASSWORD", "password"),
			Name:        getEnvAsString("DB_NAME", "stonex_db"),
			SSLMode:     getEnvAsString("DB_SSL_MODE", "disable"),
			MaxConns:    getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:    getEnvAsInt("DB_MIN_CONNS", 2),
			MaxLifetime: getEnvAsTimeDuration("DB_MAX_LIFETIME", 30*time.Minute),
			MaxIdleTime: getEnvAsTimeDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
			SlowQuery:   getEnvAsTimeDuration("DB_SLOW_QUERY", time.Second),
		},
		Cache: &structs.CacheConfig{
			Enabled:         getEnvAsBool("CACHE_ENABLED", false),
			Address:         getEnvAsString("CACHE_ADDRESS", "localhost:6379"),
			Username:        getEnvAsString("CACHE_USERNAME", ""),
			Password:        getEnvAsString("CACHE_PASSWORD", ""),
			DB:              getEnvAsInt("CACHE_DB", 0),
			PoolSize:        getEnvAsInt("CACHE_POOL_SIZE", 10),
			MinIdleConns:    getEnvAsInt("CACHE_MIN_IDLE_CONNS", 1),
			DialTimeout:     getEnvAsTimeDuration("CACHE_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:     getEnvAsTimeDuration("CACHE_READ_TIMEOUT", 3*time.Second),
			WriteTimeout:    getEnvAsTimeDuration("CACHE_WRITE_TIMEOUT", 3*time.Second),
			MaxRetries:      getEnvAsInt("CACHE_MAX_RETRIES", 3),
			MinRetryBackoff: getEnvAsTimeDuration("CACHE_MIN_RETRY_BACKOFF", 8*time.Millisecond),
			MaxRetryBackoff: getEnvAsTimeDuration("CACHE_MAX_RETRY_BACKOFF", 512*time.Millisecond),
			CatalogTTL:      getEnvAsTimeDuration("CACHE_CATALOG_TTL", 10*time.Minute),
		},
		Email: &structs.EmailConfig{
			ApiKey: getEnvAsString("RESEND_API_KEY", ""),
			From:   getEnvAsString("EMAIL_FROM", "BD StoneX <noreply@bdstonex.com>"),
			Inbox:  getEnvAsString("CONTACT_INBOX", ""),
		},
	}
}

func GetLogLevel() string {
	if IsProduction() {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
