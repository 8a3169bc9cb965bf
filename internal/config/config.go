// Package config reads the command-line/environment configuration of the
// cmd/lsagverify CLI, in the env-var-with-flag-override
// style the rest of this codebase's lineage uses for its small tools.
package config

import (
	"fmt"
	"os"

	"github.com/cypher-laboratory/lsag-verifier-go/digest"
)

// Config holds everything cmd/lsagverify needs to locate its input and
// report its result.
type Config struct {
	// InputBase64 is the signature envelope itself, base64-encoded.
	InputBase64 string
	// InputFile is a path to read InputBase64 from, when set instead of
	// passing it inline. InputBase64 takes precedence if both are set.
	InputFile string
	// Variant selects the canonical digest encoding.
	Variant digest.Variant
	// LogLevel is a zerolog level name: "debug", "info", "warn", "error".
	LogLevel string
}

// New parses args (typically os.Args[1:]) into a Config, seeded from
// environment variables LSAG_INPUT, LSAG_INPUT_FILE, LSAG_VARIANT, and
// LSAG_LOG_LEVEL, with flags taking precedence.
func New(args ...string) (*Config, error) {
	cfg := &Config{
		InputBase64: getEnv("LSAG_INPUT", ""),
		InputFile:   getEnv("LSAG_INPUT_FILE", ""),
		Variant:     digest.VariantMinimal,
		LogLevel:    getEnv("LSAG_LOG_LEVEL", "info"),
	}

	if v := getEnv("LSAG_VARIANT", "minimal"); v != "" {
		variant, err := parseVariant(v)
		if err != nil {
			return nil, err
		}
		cfg.Variant = variant
	}

	for i := 0; i < len(args); i++ {
		if len(args) <= i+1 {
			return nil, fmt.Errorf("config: missing value for %s", args[i])
		}

		switch args[i] {
		case "--input":
			cfg.InputBase64 = args[i+1]
			i++
		case "--input-file":
			cfg.InputFile = args[i+1]
			i++
		case "--variant":
			variant, err := parseVariant(args[i+1])
			if err != nil {
				return nil, err
			}
			cfg.Variant = variant
			i++
		case "--log-level":
			cfg.LogLevel = args[i+1]
			i++
		default:
			return nil, fmt.Errorf("config: unrecognized flag %q", args[i])
		}
	}

	if cfg.InputBase64 == "" && cfg.InputFile == "" {
		return nil, fmt.Errorf("config: one of --input or --input-file (or LSAG_INPUT/LSAG_INPUT_FILE) is required")
	}

	return cfg, nil
}

func parseVariant(s string) (digest.Variant, error) {
	switch s {
	case "minimal", "":
		return digest.VariantMinimal, nil
	case "full":
		return digest.VariantFull, nil
	default:
		return 0, fmt.Errorf("config: unknown digest variant %q (want \"minimal\" or \"full\")", s)
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
