// Package config exposes process-level settings for userdash, read from the
// environment once at startup. A .env file in the working directory is
// loaded first if present.
package config

import (
	_ "embed"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

// LoadEnvFile loads variables from a .env file into the process environment.
// A missing file is not an error; variables already set win over file values.
func LoadEnvFile() {
	_ = godotenv.Load()
}

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("UDASH_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("UDASH_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("UDASH_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("UDASH_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 8080
	}
	return port
}

// GetSecret returns the session signing secret, empty when unset. The caller
// falls back to a random per-process secret.
func GetSecret() string {
	return os.Getenv("UDASH_SECRET")
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("UDASH_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/userdash"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("UDASH_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

// GetSessionMaxAge returns the session lifetime in seconds. SESSION_MAX_AGE
// is given in minutes.
func GetSessionMaxAge() int {
	minutes, err := strconv.Atoi(os.Getenv("SESSION_MAX_AGE"))
	if err != nil || minutes <= 0 {
		return 7 * 24 * 60 * 60
	}
	return minutes * 60
}

func GetSessionCookieSecure() bool {
	return os.Getenv("SESSION_COOKIE_SECURE") == "true"
}

func GetSessionCookieHTTPOnly() bool {
	// HttpOnly unless explicitly disabled
	return os.Getenv("SESSION_COOKIE_HTTPONLY") != "false"
}

func GetSessionCookieSameSite() http.SameSite {
	switch strings.ToLower(os.Getenv("SESSION_COOKIE_SAMESITE")) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
