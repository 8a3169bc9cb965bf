package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cypher-laboratory/lsag-verifier-go/digest"
)

func TestNew_RequiresInput(t *testing.T) {
	t.Setenv("LSAG_INPUT", "")
	t.Setenv("LSAG_INPUT_FILE", "")
	_, err := New()
	require.Error(t, err)
}

func TestNew_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("LSAG_INPUT", "env-input")
	t.Setenv("LSAG_VARIANT", "minimal")

	cfg, err := New("--input", "flag-input", "--variant", "full", "--log-level", "debug")
	require.NoError(t, err)
	require.Equal(t, "flag-input", cfg.InputBase64)
	require.Equal(t, digest.VariantFull, cfg.Variant)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestNew_EnvOnly(t *testing.T) {
	t.Setenv("LSAG_INPUT", "env-input")
	t.Setenv("LSAG_VARIANT", "full")

	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, "env-input", cfg.InputBase64)
	require.Equal(t, digest.VariantFull, cfg.Variant)
}

func TestNew_RejectsUnknownVariant(t *testing.T) {
	t.Setenv("LSAG_INPUT", "env-input")
	_, err := New("--variant", "bogus")
	require.Error(t, err)
}

func TestNew_RejectsMissingFlagValue(t *testing.T) {
	t.Setenv("LSAG_INPUT", "env-input")
	_, err := New("--input")
	require.Error(t, err)
}

func TestNew_RejectsUnrecognizedFlag(t *testing.T) {
	t.Setenv("LSAG_INPUT", "env-input")
	_, err := New("--bogus", "value")
	require.Error(t, err)
}
