// Package config exposes process configuration for the bookshop service,
// read from environment variables with embedded name/version metadata.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"bookshop/util/random"
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
	logLevel := os.Getenv("BOOKSHOP_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("BOOKSHOP_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("BOOKSHOP_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("BOOKSHOP_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 5000
	}
	return port
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("BOOKSHOP_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "data"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

var (
	secret     []byte
	secretOnce sync.Once
)

// GetSecret returns the key used to sign both bearer tokens and session
// cookies. Without BOOKSHOP_SECRET a random key is generated, so issued
// tokens and sessions do not outlive the process.
func GetSecret() []byte {
	secretOnce.Do(func() {
		value := os.Getenv("BOOKSHOP_SECRET")
		if value == "" {
			value = random.Seq(32)
		}
		secret = []byte(value)
	})
	return secret
}
