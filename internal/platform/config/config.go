// internal/platform/config/config.go
package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"shabnam/internal/core/domain"
	"shabnam/internal/platform/errors"
	"shabnam/internal/platform/logx"
)

// Variables de entorno reconocidas.
const (
	EnvLogLevel    = logx.EnvLevel
	EnvMergeMode   = "SHABNAM_MERGE_MODE"
	EnvStepTimeout = "SHABNAM_STEP_TIMEOUT"
	EnvWildcard    = "SHABNAM_WILDCARD"
	EnvResolver    = "SHABNAM_RESOLVER"
	EnvNoColor     = "SHABNAM_NO_COLOR"
	EnvConfig      = "SHABNAM_CONFIG"
)

// Valores por defecto del pipeline.
const (
	DefaultShell      = "/bin/sh"
	DefaultPreviewLen = 100
	DefaultResolver   = "1.1.1.1:53"
	DefaultDNSTimeout = 3 * time.Second
)

type Config struct {
	Core       CoreConfig       `yaml:"-" json:"core"`
	Tools      domain.ToolSet   `yaml:"tools" json:"tools"`
	Probe      ProbeConfig      `yaml:"probe" json:"probe"`
	Bruteforce BruteforceConfig `yaml:"bruteforce" json:"bruteforce"`
	Merge      MergeConfig      `yaml:"merge" json:"merge"`
	Wildcard   WildcardConfig   `yaml:"wildcard" json:"wildcard"`
	Runner     RunnerConfig     `yaml:"runner" json:"runner"`
	Log        LogConfig        `yaml:"log" json:"log"`
}

// CoreConfig viene solo de la línea de comandos.
type CoreConfig struct {
	Domain     string          `json:"domain"`
	Approach   domain.Approach `json:"approach"`
	ConfigPath string          `json:"config_path,omitempty"`
}

type ProbeConfig struct {
	Ports       string `yaml:"ports" json:"ports"`
	RandomAgent bool   `yaml:"random_agent" json:"random_agent"`
}

type BruteforceConfig struct {
	Wordlists  StringSlice `yaml:"wordlists" json:"wordlists"`
	MatchCodes string      `yaml:"match_codes" json:"match_codes"`
}

type MergeConfig struct {
	Mode domain.MergeMode `yaml:"mode" json:"mode"`
}

type WildcardConfig struct {
	Enabled  bool          `yaml:"enabled" json:"enabled"`
	Resolver string        `yaml:"resolver" json:"resolver"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout"`
}

type RunnerConfig struct {
	Shell       string        `yaml:"shell" json:"shell"`
	StepTimeout time.Duration `yaml:"step_timeout" json:"step_timeout"` // 0 = sin timeout
	PreviewLen  int           `yaml:"preview_len" json:"preview_len"`
}

type LogConfig struct {
	Level   string `yaml:"level" json:"level"`
	NoColor bool   `yaml:"no_color" json:"no_color"`
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		Tools: domain.DefaultToolSet(),
		Probe: ProbeConfig{
			Ports:       domain.DefaultPorts,
			RandomAgent: true,
		},
		Bruteforce: BruteforceConfig{
			Wordlists:  StringSlice(domain.DefaultWordlists()),
			MatchCodes: domain.DefaultMatchCodes,
		},
		Merge: MergeConfig{
			Mode: domain.MergeExternal,
		},
		Wildcard: WildcardConfig{
			Enabled:  true,
			Resolver: DefaultResolver,
			Timeout:  DefaultDNSTimeout,
		},
		Runner: RunnerConfig{
			Shell:      DefaultShell,
			PreviewLen: DefaultPreviewLen,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load construye la configuración: defaults -> archivo YAML -> ENV -> flags.
// fs y flags pueden ser nil (sin flags).
func Load(fs *pflag.FlagSet, flags *Flags) (Config, error) {
	cfg := DefaultConfig()

	explicit := ""
	if flags != nil {
		explicit = flags.ConfigPath
	}
	if explicit == "" {
		explicit = getenv(EnvConfig, "")
	}

	path, err := resolveConfigPath(explicit)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return cfg, err
		}
		cfg.Core.ConfigPath = path
	}

	loadFromEnv(&cfg)

	if flags != nil {
		flags.apply(fs, &cfg)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) {
	if v := getenv(EnvLogLevel, ""); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv(EnvMergeMode, ""); v != "" {
		cfg.Merge.Mode = domain.MergeMode(v)
	}
	if v := getenv(EnvStepTimeout, ""); v != "" {
		cfg.Runner.StepTimeout = parseDuration(v, cfg.Runner.StepTimeout)
	}
	if v := getenv(EnvWildcard, ""); v != "" {
		cfg.Wildcard.Enabled = parseBool(v)
	}
	if v := getenv(EnvResolver, ""); v != "" {
		cfg.Wildcard.Resolver = v
	}
	if v := getenv(EnvNoColor, ""); v != "" {
		cfg.Log.NoColor = parseBool(v)
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.Log.NoColor = true
	}
}

// Validate normaliza los valores y rechaza los inválidos con ErrInvalidConfig.
func (c *Config) Validate() error {
	c.Core.Domain = strings.TrimSpace(c.Core.Domain)

	c.Merge.Mode = domain.MergeMode(strings.ToLower(strings.TrimSpace(string(c.Merge.Mode))))
	if c.Merge.Mode == "" {
		c.Merge.Mode = domain.MergeExternal
	}
	if !c.Merge.Mode.IsValid() {
		return errors.Wrapf(errors.ErrInvalidConfig, "merge mode %q: expected %q or %q",
			c.Merge.Mode, domain.MergeExternal, domain.MergeNative)
	}

	lvl, ok := logx.LookupLevel(c.Log.Level)
	if !ok {
		return errors.Wrapf(errors.ErrInvalidConfig, "log level %q: expected debug, info, warn or error", c.Log.Level)
	}
	c.Log.Level = lvl.String()

	c.Probe.Ports = strings.TrimSpace(c.Probe.Ports)
	if c.Probe.Ports == "" {
		c.Probe.Ports = domain.DefaultPorts
	}
	if err := validatePorts(c.Probe.Ports); err != nil {
		return err
	}

	c.Bruteforce.MatchCodes = strings.TrimSpace(c.Bruteforce.MatchCodes)
	if c.Bruteforce.MatchCodes == "" {
		c.Bruteforce.MatchCodes = domain.DefaultMatchCodes
	}
	if err := validateCodes(c.Bruteforce.MatchCodes); err != nil {
		return err
	}
	if len(c.Bruteforce.Wordlists) == 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "bruteforce needs at least one wordlist")
	}

	if c.Runner.StepTimeout < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "step timeout %s is negative", c.Runner.StepTimeout)
	}
	if strings.TrimSpace(c.Runner.Shell) == "" {
		c.Runner.Shell = DefaultShell
	}
	if c.Runner.PreviewLen <= 0 {
		c.Runner.PreviewLen = DefaultPreviewLen
	}

	if strings.TrimSpace(c.Wildcard.Resolver) == "" {
		c.Wildcard.Resolver = DefaultResolver
	}
	if c.Wildcard.Timeout <= 0 {
		c.Wildcard.Timeout = DefaultDNSTimeout
	}

	fillTools(&c.Tools)
	return nil
}

// LogLevel devuelve el nivel ya validado.
func (c Config) LogLevel() logx.Level {
	return logx.ParseLevel(c.Log.Level)
}

// ToJSON serializa la configuración a JSON (útil para debugging).
func (c Config) ToJSON() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func fillTools(ts *domain.ToolSet) {
	def := domain.DefaultToolSet()
	fill := func(v *string, d string) {
		if strings.TrimSpace(*v) == "" {
			*v = d
		}
	}
	fill(&ts.Findomain, def.Findomain)
	fill(&ts.Subfinder, def.Subfinder)
	fill(&ts.Anew, def.Anew)
	fill(&ts.Httpx, def.Httpx)
	fill(&ts.Shosubgo, def.Shosubgo)
	fill(&ts.GithubSubdomains, def.GithubSubdomains)
	fill(&ts.Ffuf, def.Ffuf)
	fill(&ts.Jq, def.Jq)
}

func validatePorts(ports string) error {
	for _, p := range strings.Split(ports, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 || n > 65535 {
			return errors.Wrapf(errors.ErrInvalidConfig, "probe port %q out of range", p)
		}
	}
	return nil
}

func validateCodes(codes string) error {
	for _, c := range strings.Split(codes, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(c))
		if err != nil || n < 100 || n > 599 {
			return errors.Wrapf(errors.ErrInvalidConfig, "status code %q is not an HTTP status", c)
		}
	}
	return nil
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

// parseDuration acepta "90s"/"5m" o segundos enteros.
func parseDuration(v string, def time.Duration) time.Duration {
	v = strings.TrimSpace(v)
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if s := parseInt(v, -1); s >= 0 {
		return time.Duration(s) * time.Second
	}
	return def
}
