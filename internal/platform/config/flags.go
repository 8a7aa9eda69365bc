// internal/platform/config/flags.go
package config

import (
	"time"

	"github.com/spf13/pflag"

	"shabnam/internal/core/domain"
	"shabnam/internal/platform/errors"
)

// Flags son los valores crudos de la línea de comandos.
type Flags struct {
	Fast        bool
	Slow        bool
	ConfigPath  string
	LogLevel    string
	Verbose     bool
	Merge       string
	StepTimeout time.Duration
	NoWildcard  bool
	NoColor     bool
}

// BindFlags registra los flags de shabnam en fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.BoolVarP(&f.Fast, "fast", "f", false, "Run fast approach")
	fs.BoolVarP(&f.Slow, "slow", "s", false, "Run slow approach")
	fs.StringVar(&f.ConfigPath, "config", "", "Path to a YAML config file (default $XDG_CONFIG_HOME/shabnam/config.yaml)")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "Shortcut for --log-level=debug")
	fs.StringVar(&f.Merge, "merge", "", "Merge mode: external (anew/sed/jq) or native")
	fs.DurationVar(&f.StepTimeout, "step-timeout", 0, "Per-step time limit, 0 = none")
	fs.BoolVar(&f.NoWildcard, "no-wildcard-check", false, "Skip the wildcard DNS probe before brute force")
	fs.BoolVar(&f.NoColor, "no-color", false, "Disable colored output")

	return f
}

// Approach resuelve --fast/--slow; exactamente uno debe estar activo.
func (f *Flags) Approach() (domain.Approach, error) {
	switch {
	case f.Fast && !f.Slow:
		return domain.ApproachFast, nil
	case f.Slow && !f.Fast:
		return domain.ApproachSlow, nil
	default:
		return "", errors.WithKind(errors.ErrApproachRequired, "one of --fast or --slow is required")
	}
}

// apply sobrescribe cfg con los flags que el usuario pasó explícitamente.
func (f *Flags) apply(fs *pflag.FlagSet, cfg *Config) {
	changed := func(name string) bool {
		return fs != nil && fs.Changed(name)
	}

	if a, err := f.Approach(); err == nil {
		cfg.Core.Approach = a
	}
	if changed("log-level") {
		cfg.Log.Level = f.LogLevel
	}
	if f.Verbose {
		cfg.Log.Level = "debug"
	}
	if changed("merge") {
		cfg.Merge.Mode = domain.MergeMode(f.Merge)
	}
	if changed("step-timeout") {
		cfg.Runner.StepTimeout = f.StepTimeout
	}
	if f.NoWildcard {
		cfg.Wildcard.Enabled = false
	}
	if f.NoColor {
		cfg.Log.NoColor = true
	}
}
