package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dmitrymomot/contractkit/pkg/environment"
	"github.com/dmitrymomot/contractkit/pkg/logger"
)

// Settings holds the process-wide knobs for contract checking.
type Settings struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	// Validation forces contract checking on or off. When empty, checking
	// is on everywhere except production.
	Validation string `env:"CONTRACT_VALIDATION"`
	LogLevel   string `env:"CONTRACT_LOG_LEVEL" envDefault:"warn"`
	LogFormat  string `env:"CONTRACT_LOG_FORMAT" envDefault:"text"`
	Component  string `env:"CONTRACT_COMPONENT" envDefault:"contracts"`
}

// Validate reports every malformed field at once.
func (s *Settings) Validate() error {
	var errs []error
	if _, err := environment.Parse(s.Environment); err != nil {
		errs = append(errs, err)
	}
	if _, err := s.validation(); err != nil {
		errs = append(errs, err)
	}
	if _, err := logger.ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := logger.ParseFormat(s.LogFormat); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s Settings) validation() (*bool, error) {
	raw := strings.TrimSpace(s.Validation)
	if raw == "" {
		return nil, nil
	}
	on, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("CONTRACT_VALIDATION: %w", err)
	}
	return &on, nil
}

// Env returns the parsed environment, or Development when it is malformed.
func (s Settings) Env() environment.Environment {
	env, err := environment.Parse(s.Environment)
	if err != nil {
		return environment.Development
	}
	return env
}

// ValidationEnabled reports the initial switch state: the explicit
// CONTRACT_VALIDATION value when set, otherwise true outside production.
func (s Settings) ValidationEnabled() bool {
	if on, err := s.validation(); err == nil && on != nil {
		return *on
	}
	return !s.Env().IsProduction()
}

// Level returns the parsed log level, or slog.LevelWarn when it is malformed.
func (s Settings) Level() slog.Level {
	l, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return l
}

// Format returns the parsed log format, or logger.FormatText when it is
// malformed.
func (s Settings) Format() logger.Format {
	f, err := logger.ParseFormat(s.LogFormat)
	if err != nil {
		return logger.FormatText
	}
	return f
}

// LoggerOptions translates the settings into logger options. The explicit
// level and format override the environment defaults.
func (s Settings) LoggerOptions() []logger.Option {
	return []logger.Option{
		logger.WithEnvironment(s.Env()),
		logger.WithLevel(s.Level()),
		logger.WithFormat(s.Format()),
		logger.WithComponent(s.Component),
	}
}

// LoadSettings loads Settings through the shared cache.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := Load(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
