// Package config reads engine and demo settings from the environment.
// The cmd binaries load a .env file via godotenv/autoload before these
// accessors run.
package config

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Env returns the deployment environment, one of dev/development or
// prod/production. Defaults to dev.
func Env() string {
	if v := os.Getenv("BARBU_ENV"); v != "" {
		return v
	}
	return "dev"
}

// LogLevel parses BARBU_LOG_LEVEL into a logrus level, defaulting to
// info when unset or unparseable.
func LogLevel() logrus.Level {
	v := os.Getenv("BARBU_LOG_LEVEL")
	if v == "" {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(v)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// DemoSeed returns the shuffle seed for the demo driver, or 0 when the
// driver should seed from the clock.
func DemoSeed() int64 {
	v := os.Getenv("BARBU_DEMO_SEED")
	if v == "" {
		return 0
	}
	seed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0
	}
	return seed
}

// DemoPlayers returns the table size for the demo driver, clamped to a
// sensible minimum. Defaults to 4.
func DemoPlayers() int {
	v := os.Getenv("BARBU_DEMO_PLAYERS")
	if v == "" {
		return 4
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 2 {
		return 4
	}
	return n
}
