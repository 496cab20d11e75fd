// Package config loads flagkit runtime settings from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// populate a Settings struct from the process environment, with an optional
// `.env` file fallback for local development.
//
// # Usage
//
//	settings, err := config.Load()
//	if err != nil {
//	    log.Fatalf("loading settings: %v", err)
//	}
//
//	reg := registry.MustNew("checkout",
//	    registry.WithHistoryCapacity(settings.HistoryCapacity))
//
// Load reads the default `.env` file when present; explicit files can be
// passed to load a different one:
//
//	settings, err := config.Load("./config/.env")
//
// # Error Handling
//
// The package defines sentinel errors comparable with `errors.Is`:
//
//   - `ErrParsingConfig` – environment variables could not be parsed.
//   - `ErrInvalidConfig` – parsed settings failed validation.
package config
