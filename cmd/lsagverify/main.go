// Command lsagverify verifies a base64-encoded LSAG ring signature envelope
// and prints its canonical digest.
package main

import (
	"encoding/hex"
	"os"

	"github.com/rs/zerolog"

	"github.com/cypher-laboratory/lsag-verifier-go/internal/config"
	"github.com/cypher-laboratory/lsag-verifier-go/lsag"
)

func main() {
	cfg, err := config.New(os.Args[1:]...)
	if err != nil {
		zerolog.New(os.Stderr).With().Timestamp().Logger().Fatal().Err(err).Msg("invalid configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	input := cfg.InputBase64
	if input == "" {
		raw, readErr := os.ReadFile(cfg.InputFile)
		if readErr != nil {
			logger.Fatal().Err(readErr).Str("path", cfg.InputFile).Msg("failed to read input file")
		}
		input = string(raw)
	}

	result, ok := lsag.VerifyBase64(input, cfg.Variant)
	if !ok {
		logger.Error().Msg("ring signature verification failed")
		os.Exit(1)
	}

	logger.Info().Str("digest", hex.EncodeToString(result[:])).Msg("ring signature verified")
	os.Stdout.WriteString(hex.EncodeToString(result[:]) + "\n")
}
