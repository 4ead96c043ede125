package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := EmptyConfig()
	assert.Equal(t, "furnished", cfg.GetRoomType())
	assert.Equal(t, "auto", cfg.GetCleaningMode())
	assert.Equal(t, 10000, cfg.GetMaxSteps())
	assert.True(t, cfg.GetEnableSLAM())
	_, ok := cfg.GetRandomSeed()
	assert.False(t, ok)
	assert.Equal(t, 100.0, cfg.GetBatteryCapacity())
	assert.Equal(t, 0.3, cfg.GetCleaningWidth())
	assert.Equal(t, 0.2, cfg.GetSpeed())
	assert.Equal(t, 2.0, cfg.GetSensorRange())
	assert.Equal(t, 10.0, cfg.GetChargeRate())
	assert.Equal(t, 0.1, cfg.GetTickRate())
	assert.Equal(t, 0.05, cfg.GetSLAMResolution())
	assert.Equal(t, 100, cfg.GetSLAMNumParticles())
	assert.Equal(t, 10, cfg.GetMaxStuckAttempts())
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	t.Parallel()

	raw := `{"room_type":"corridor","max_steps":500,"enable_slam":false,"random_seed":42}`
	cfg, err := ParseConfig([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "corridor", cfg.GetRoomType())
	assert.Equal(t, 500, cfg.GetMaxSteps())
	assert.False(t, cfg.GetEnableSLAM())

	seed, ok := cfg.GetRandomSeed()
	require.True(t, ok)
	assert.Equal(t, int64(42), seed)
}

func TestParseConfigRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig([]byte("{not json"))
	require.Error(t, err)
}

func TestParseCleaningModeAcceptsEveryListedMode(t *testing.T) {
	t.Parallel()

	for _, m := range CleaningModes() {
		parsed, err := ParseCleaningMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestParseCleaningModeRejectsUnknown(t *testing.T) {
	t.Parallel()

	_, err := ParseCleaningMode("teleport")
	require.ErrorIs(t, err, ErrUnknownCleaningMode)
}
