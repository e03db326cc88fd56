// Package config loads configuration from environment variables and .env
// files.
//
// Load parses any struct annotated with `env` tags using
// github.com/caarlos0/env/v11 and caches the result per type, so the
// environment is read once per process. An optional ./.env file is read
// with github.com/joho/godotenv before the first parse; LoadEnv reads
// additional files that must exist. Structs with a Validate() error method
// are validated after parsing.
//
// Settings is the configuration of contract checking itself:
//
//	APP_ENV               development | staging | production (dev, stage, prod)
//	CONTRACT_VALIDATION   true | false; unset means "on unless production"
//	CONTRACT_LOG_LEVEL    debug | info | warn | error (default warn)
//	CONTRACT_LOG_FORMAT   text | json (default text)
//	CONTRACT_COMPONENT    component attribute on warning records
//
// Usage:
//
//	s, err := config.LoadSettings()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g := guard.New(guard.WithSettings(s))
//
// Errors can be compared with errors.Is against ErrParsingConfig,
// ErrInvalidConfig, ErrLoadingEnvFile and ErrNilPointer. ResetCache clears
// the cache between tests.
package config
