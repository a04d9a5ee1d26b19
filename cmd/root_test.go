package cmd

import (
	"testing"

	"github.com/AzielCF/az-medqa/core/config"
	"github.com/stretchr/testify/assert"
)

func TestInitEnvConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("APP_DEBUG", "true")

	flagPort = ""
	flagDebug = false

	initEnvConfig()

	assert.Equal(t, "9999", config.Global.App.Port)
	assert.True(t, config.Global.App.Debug)
}

func TestInitEnvConfig_FlagsWinOverEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9999")

	flagPort = "7777"
	flagDebug = false
	defer func() { flagPort = "" }()

	initEnvConfig()

	assert.Equal(t, "7777", config.Global.App.Port)
}
