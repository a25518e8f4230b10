package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Default file names used when nothing overrides them
const (
	DefaultMavenUnusedDeps = "mvn-deps.log"
	DefaultUnusedDeps      = "unused-deps.log"
	DefaultJdepsOutput     = "jdeps-deps.log"
	DefaultUsedDeps        = "used-deps.log"
)

const envPrefix = "DEP_RECONCILE_"

// Config holds every path and switch of a reconciliation run
type Config struct {
	MavenUnusedDeps string `yaml:"maven_unused_deps" toml:"maven_unused_deps"` // mvn dependency:analyze output
	UnusedDeps      string `yaml:"unused_deps" toml:"unused_deps"`             // formatted unused jars
	JdepsOutput     string `yaml:"jdeps_output" toml:"jdeps_output"`           // raw jdeps output
	UsedDeps        string `yaml:"used_deps" toml:"used_deps"`                 // formatted used jars

	CurationFile   string `yaml:"curation_file" toml:"curation_file"`
	BackupDir      string `yaml:"backup_dir" toml:"backup_dir"`
	LogDir         string `yaml:"log_dir" toml:"log_dir"`
	ReportJSON     string `yaml:"report_json" toml:"report_json"`
	AllJarsPerLine bool   `yaml:"all_jars_per_line" toml:"all_jars_per_line"`
	NoColor        bool   `yaml:"no_color" toml:"no_color"`
	Verbose        bool   `yaml:"verbose" toml:"verbose"`
}

// DefaultConfig returns the configuration of a plain no-argument run
func DefaultConfig() *Config {
	return &Config{
		MavenUnusedDeps: DefaultMavenUnusedDeps,
		UnusedDeps:      DefaultUnusedDeps,
		JdepsOutput:     DefaultJdepsOutput,
		UsedDeps:        DefaultUsedDeps,
	}
}

// LoadConfigFile overlays a YAML or TOML file onto cfg.
// Keys absent from the file keep their current value.
func LoadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %v", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("invalid config file %s: %v", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("invalid config file %s: %v", path, err)
		}
	default:
		return fmt.Errorf("unsupported config file type %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
	return nil
}

// DotEnvFile is loaded by LoadEnv when it exists
const DotEnvFile = ".env"

// LoadEnv loads .env (if present) and applies DEP_RECONCILE_* variables.
// NO_COLOR is honoured as well.
func LoadEnv(cfg *Config) error {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %v", DotEnvFile, err)
	}

	strFields := map[string]*string{
		"MAVEN_UNUSED_DEPS": &cfg.MavenUnusedDeps,
		"UNUSED_DEPS":       &cfg.UnusedDeps,
		"JDEPS_OUTPUT":      &cfg.JdepsOutput,
		"USED_DEPS":         &cfg.UsedDeps,
		"CURATION_FILE":     &cfg.CurationFile,
		"BACKUP_DIR":        &cfg.BackupDir,
		"LOG_DIR":           &cfg.LogDir,
		"REPORT_JSON":       &cfg.ReportJSON,
	}
	for name, field := range strFields {
		if v := strings.TrimSpace(os.Getenv(envPrefix + name)); v != "" {
			*field = v
		}
	}

	boolFields := map[string]*bool{
		"ALL_JARS_PER_LINE": &cfg.AllJarsPerLine,
		"NO_COLOR":          &cfg.NoColor,
		"VERBOSE":           &cfg.Verbose,
	}
	for name, field := range boolFields {
		raw := strings.TrimSpace(os.Getenv(envPrefix + name))
		if raw == "" {
			continue
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid %s%s=%q: %v", envPrefix, name, raw, err)
		}
		*field = b
	}

	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	return nil
}

// Validate rejects configurations that cannot produce a meaningful run
func (c *Config) Validate() error {
	required := []struct {
		name, value string
	}{
		{"maven_unused_deps", c.MavenUnusedDeps},
		{"unused_deps", c.UnusedDeps},
		{"jdeps_output", c.JdepsOutput},
		{"used_deps", c.UsedDeps},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("config: %s must not be empty", r.name)
		}
	}

	// every output must differ from the other output and from both inputs,
	// or a run would clobber a file it still has to read
	type namedPath struct{ name, path string }
	outputs := []namedPath{{"unused_deps", c.UnusedDeps}, {"used_deps", c.UsedDeps}}
	others := []namedPath{{"maven_unused_deps", c.MavenUnusedDeps}, {"jdeps_output", c.JdepsOutput}, {"used_deps", c.UsedDeps}}
	for _, out := range outputs {
		for _, other := range others {
			if out.name == other.name {
				continue
			}
			if samePath(out.path, other.path) {
				return fmt.Errorf("config: %s and %s both point to %s", out.name, other.name, out.path)
			}
		}
	}
	return nil
}

// samePath compares two paths after making them absolute and clean
func samePath(a, b string) bool {
	return normalizePath(a) == normalizePath(b)
}

func normalizePath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
