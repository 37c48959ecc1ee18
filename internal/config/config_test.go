package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("BARBU_ENV", "")
	t.Setenv("BARBU_LOG_LEVEL", "")
	t.Setenv("BARBU_DEMO_SEED", "")
	t.Setenv("BARBU_DEMO_PLAYERS", "")

	assert.Equal(t, "dev", Env())
	assert.Equal(t, logrus.InfoLevel, LogLevel())
	assert.EqualValues(t, 0, DemoSeed())
	assert.Equal(t, 4, DemoPlayers())
}

func TestOverrides(t *testing.T) {
	t.Setenv("BARBU_ENV", "production")
	t.Setenv("BARBU_LOG_LEVEL", "debug")
	t.Setenv("BARBU_DEMO_SEED", "1234")
	t.Setenv("BARBU_DEMO_PLAYERS", "5")

	assert.Equal(t, "production", Env())
	assert.Equal(t, logrus.DebugLevel, LogLevel())
	assert.EqualValues(t, 1234, DemoSeed())
	assert.Equal(t, 5, DemoPlayers())
}

func TestBadValuesFallBack(t *testing.T) {
	t.Setenv("BARBU_LOG_LEVEL", "shouty")
	t.Setenv("BARBU_DEMO_PLAYERS", "1")

	assert.Equal(t, logrus.InfoLevel, LogLevel())
	assert.Equal(t, 4, DemoPlayers(), "tables below two players fall back to the default")
}
