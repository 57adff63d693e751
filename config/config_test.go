package config

import (
	"os"
	"testing"
	"time"

	"github.com/Strum355/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.InitSimpleLogger(&log.Config{Output: os.Stdout})
	os.Exit(m.Run())
}

func TestInitConfigDefaults(t *testing.T) {
	require.NoError(t, InitConfig())
	assert.Equal(t, "credentials.json", viper.GetString("sheets.credentials"))
	assert.Equal(t, "data.json", viper.GetString("store.path"))
	assert.Equal(t, 5*time.Minute, viper.GetDuration("sheets.ttl"))
	assert.Equal(t, 2112, viper.GetInt("prom.port"))
}

func TestInitConfigEnvOverride(t *testing.T) {
	t.Setenv("STORE_PATH", "/tmp/assignments.json")
	t.Setenv("SHEETS_TTL", "30s")
	require.NoError(t, InitConfig())
	assert.Equal(t, "/tmp/assignments.json", viper.GetString("store.path"))
	assert.Equal(t, 30*time.Second, viper.GetDuration("sheets.ttl"))
}

func TestTimezoneFallback(t *testing.T) {
	require.NoError(t, InitConfig())
	t.Setenv("SHEETS_TIMEZONE", "Not/AZone")
	assert.Equal(t, time.Local, Timezone())

	t.Setenv("SHEETS_TIMEZONE", "UTC")
	assert.Equal(t, "UTC", Timezone().String())
}
