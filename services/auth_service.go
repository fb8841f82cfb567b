package services

import (
	"stonex_server/lib"
	"stonex_server/structs"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
)

// devFallbackPassword unlocks the admin outside production when no secret is configured
const devFallbackPassword = "Rajasthan"

type AuthService struct {
	logger *gecho.Logger
	cfg    *structs.Config
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger) *AuthService {
	return &AuthService{
		logger: logger,
		cfg:    cfg,
	}
}

// VerifyPassword checks the trimmed password against the configured hash,
// then the plain secret, then the development fallback.
func (as *AuthService) VerifyPassword(password string) bool {
	provided := strings.TrimSpace(password)

	if hash := as.cfg.Auth.PasswordHash; hash != "" {
		ok, err := lib.VerifyPasswordHash(provided, hash)
		if err != nil {
			as.logger.Error("Configured admin password hash is invalid", gecho.Field("error", err))
			return false
		}
		return ok
	}

	if expected := strings.TrimSpace(as.cfg.Auth.Password); expected != "" {
		return lib.SecureCompare([]byte(provided), []byte(expected))
	}

	if !as.isProduction() {
		return provided == devFallbackPassword
	}
	return false
}

// IssueSession returns the value for the admin cookie
func (as *AuthService) IssueSession() (string, error) {
	if as.cfg.Auth.SessionSecret == "" {
		return lib.LegacySessionValue, nil
	}
	return lib.SignSession(as.cfg.Auth.SessionSecret, as.SessionTTL())
}

// ValidSession checks a cookie value issued by IssueSession
func (as *AuthService) ValidSession(value string) bool {
	if value == "" {
		return false
	}
	if as.cfg.Auth.SessionSecret == "" {
		return value == lib.LegacySessionValue
	}

	if _, err := lib.ParseSession(value, as.cfg.Auth.SessionSecret); err != nil {
		as.logger.Debug("Rejected admin session", gecho.Field("error", err))
		return false
	}
	return true
}

func (as *AuthService) SessionTTL() time.Duration {
	if as.cfg.Auth.SessionTTL > 0 {
		return as.cfg.Auth.SessionTTL
	}
	return 2 * time.Hour
}

func (as *AuthService) CookieOptions() lib.CookieOptions {
	return lib.CookieOptions{
		Secure: as.isProduction(),
		Domain: as.cfg.Auth.CookieDomain,
	}
}

func (as *AuthService) isProduction() bool {
	return as.cfg.Server.Environment == "production"
}
