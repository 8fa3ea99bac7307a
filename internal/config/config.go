// Package config holds program parameters and loads them from a TOML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"

	"github.com/joywang0926/course-gantt-app/internal/conflict"
	"github.com/joywang0926/course-gantt-app/pkg/model"
)

// AppName names the config and state directories.
const AppName = "course-gantt"

// EnvPrefix prefixes environment overrides, e.g. GANTT_HORIZON.
const EnvPrefix = "GANTT_"

type Configuration struct {
	CoursesFile string `toml:"courses_file"`
	Sheet       string `toml:"sheet"`
	Delimiter   string `toml:"delimiter"`
	ExportFile  string `toml:"export_file"`
	Horizon     int    `toml:"horizon"`
	Mode        string `toml:"mode"`
	Addr        string `toml:"addr"`
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		CoursesFile: "courses.csv",
		Sheet:       "",
		Delimiter:   ",",
		ExportFile:  "conflicts.csv",
		Horizon:     18, // weeks per semester
		Mode:        conflict.FirstOccupant.String(),
		Addr:        ":3001",
	}
}

// DefaultPath returns the config file found under the XDG config dirs,
// or "" when there is none.
func DefaultPath() string {
	path, err := xdg.SearchConfigFile(AppName + "/config.toml")
	if err != nil {
		return ""
	}
	return path
}

// Load starts from the defaults, overlays the TOML file at path (or the
// XDG default when path is empty) and then GANTT_* environment variables.
func Load(path string) (*Configuration, error) {
	cfg := NewDefaultConfiguration()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
			log.Debug().Str("path", path).Msg("Config file loaded")
		case explicit || !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Configuration) applyEnv() {
	if v := env("COURSES_FILE"); v != "" {
		c.CoursesFile = v
	}
	if v := env("SHEET"); v != "" {
		c.Sheet = v
	}
	if v := env("DELIMITER"); v != "" {
		c.Delimiter = v
	}
	if v := env("EXPORT_FILE"); v != "" {
		c.ExportFile = v
	}
	if v := env("MODE"); v != "" {
		c.Mode = v
	}
	if v := env("ADDR"); v != "" {
		c.Addr = v
	}
	if v := env("HORIZON"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Warn().Str("key", EnvPrefix+"HORIZON").Str("value", v).Int("default", c.Horizon).Msg("invalid int; using default")
			return
		}
		c.Horizon = n
	}
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(EnvPrefix + key))
}

// Validate checks the parameters that the detector and loaders rely on.
func (c *Configuration) Validate() error {
	if c.Horizon < 1 || c.Horizon > model.MaxHorizon {
		return fmt.Errorf("horizon must be between 1 and %d, got %d", model.MaxHorizon, c.Horizon)
	}
	if _, err := conflict.ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := c.DelimiterRune(); err != nil {
		return err
	}
	return nil
}

// DelimiterRune returns the CSV field separator.
func (c *Configuration) DelimiterRune() (rune, error) {
	d := c.Delimiter
	if d == `\t` || d == "tab" {
		return '\t', nil
	}
	if utf8.RuneCountInString(d) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", d)
	}
	r, _ := utf8.DecodeRuneInString(d)
	return r, nil
}

// Detector builds a conflict detector from the configuration.
func (c *Configuration) Detector() (*conflict.Detector, error) {
	mode, err := conflict.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	return conflict.NewDetector(conflict.WithHorizon(c.Horizon), conflict.WithMode(mode)), nil
}
