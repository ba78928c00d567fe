package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/seawatts/nslog/core"
	"github.com/seawatts/nslog/namespace"
)

const (
	// EnvLevel is the environment variable holding the minimum
	// severity (debug|info|warn|error, case-insensitive). Any other
	// value, or absence, means no minimum.
	EnvLevel = "NSLOG_LEVEL"

	// EnvNamespaces is the environment variable holding a
	// comma-separated list of namespace patterns.
	EnvNamespaces = "NSLOG_NAMESPACES"

	// DefaultNamespacePrefix is the first-party prefix enabled when
	// no patterns are configured at all: out of the box only the
	// embedding application's own namespaces emit output.
	DefaultNamespacePrefix = "seawatts-startup"
)

// Settings is the parsed, strongly-typed form of the stringly
// environment and file configuration. The rest of the system never
// sees raw config strings.
type Settings struct {
	// Level is the minimum severity; only meaningful when LevelSet.
	Level core.Level
	// LevelSet is false when no (or no valid) minimum was
	// configured, which means every severity passes.
	LevelSet bool
	// Patterns is the namespace pattern list, trimmed, in order.
	Patterns []string
	// Format selects the output encoding, "text" or "json".
	Format string
	// Output selects the sink, "stdout", "stderr", or a file path.
	Output string
}

// MinLevel returns the effective minimum severity: the configured
// level, or DebugLevel (accept everything) when none was set.
func (s Settings) MinLevel() core.Level {
	if s.LevelSet {
		return s.Level
	}
	return core.DebugLevel
}

// Apply seeds the registry from the settings. The registry is reset
// first so a reload converges on the configured set regardless of
// history. With no patterns configured, only the first-party prefix
// is enabled.
func (s Settings) Apply(r *namespace.Registry) {
	r.Reset()
	if len(s.Patterns) == 0 {
		r.Enable(DefaultNamespacePrefix + ":*")
		return
	}
	for _, p := range s.Patterns {
		r.Enable(p)
	}
}

// FromEnv reads settings from the process environment. Malformed
// values normalize silently: a bad level means no minimum, an absent
// pattern list falls back to the first-party default in Apply.
// Logging configuration must never be able to fail the host process.
func FromEnv() Settings {
	var s Settings
	if level, ok := core.ParseLevel(os.Getenv(EnvLevel)); ok {
		s.Level = level
		s.LevelSet = true
	}
	if raw := os.Getenv(EnvNamespaces); raw != "" {
		s.Patterns = splitPatterns(raw)
	}
	return s
}

// FromEnvFile loads a dotenv file into the process environment and
// then reads settings as FromEnv does. A missing or unreadable file
// is ignored; already-exported variables keep precedence because
// godotenv.Load never overwrites.
func FromEnvFile(path string) Settings {
	_ = godotenv.Load(path)
	return FromEnv()
}

// fileConfig is the YAML shape of a logging config file.
type fileConfig struct {
	Level      string   `yaml:"level"`
	Namespaces []string `yaml:"namespaces"`
	Format     string   `yaml:"format"`
	Output     string   `yaml:"output"`
}

// FromFile reads settings from a YAML file. Unknown level strings
// normalize to "no minimum" like everywhere else; only I/O and YAML
// syntax problems surface as errors.
func FromFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Settings{}, err
	}

	var s Settings
	if level, ok := core.ParseLevel(fc.Level); ok {
		s.Level = level
		s.LevelSet = true
	}
	for _, p := range fc.Namespaces {
		if p = strings.TrimSpace(p); p != "" {
			s.Patterns = append(s.Patterns, p)
		}
	}
	s.Format = fc.Format
	s.Output = fc.Output
	return s, nil
}

// Merge overlays override on base: any value set in override wins,
// so environment settings can take precedence over a config file.
func Merge(base, override Settings) Settings {
	out := base
	if override.LevelSet {
		out.Level = override.Level
		out.LevelSet = true
	}
	if len(override.Patterns) > 0 {
		out.Patterns = override.Patterns
	}
	if override.Format != "" {
		out.Format = override.Format
	}
	if override.Output != "" {
		out.Output = override.Output
	}
	return out
}

// splitPatterns splits a comma-separated pattern list, trimming
// whitespace and dropping empty items.
func splitPatterns(raw string) []string {
	parts := strings.Split(raw, ",")
	patterns := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}
