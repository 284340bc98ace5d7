package update

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/sandeepkv93/dashd/internal/model"
)

type RuntimeConfig struct {
	UI  UIConfig  `toml:"ui"`
	Log LogConfig `toml:"log"`
}

type UIConfig struct {
	Theme    string `toml:"theme"`
	StartTab string `toml:"start_tab"`
	Density  int    `toml:"density"`
}

type LogConfig struct {
	Level string `toml:"level"`
	// File is empty when logs are discarded.
	File string `toml:"file"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		UI: UIConfig{
			Theme:    string(model.ThemeLight),
			StartTab: string(model.TabDashboard),
			Density:  1,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadRuntimeConfig overlays the TOML file at path on base. A missing or
// empty file leaves base unchanged.
func LoadRuntimeConfig(path string, base RuntimeConfig) (RuntimeConfig, error) {
	cfg := base
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return RuntimeConfig{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return RuntimeConfig{}, fmt.Errorf("decode toml: %w", err)
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("DASHD_THEME"); ok {
		cfg.UI.Theme = v
	}
	if v, ok := getEnvString("DASHD_START_TAB"); ok {
		cfg.UI.StartTab = v
	}
	if v, ok := getEnvInt("DASHD_DENSITY"); ok && v > 0 {
		cfg.UI.Density = v
	}
	if v, ok := getEnvString("DASHD_LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := getEnvString("DASHD_LOG_FILE"); ok {
		cfg.Log.File = v
	}
	return cfg
}

func (c RuntimeConfig) Validate() error {
	if _, ok := model.ParseTheme(c.UI.Theme); !ok {
		return fmt.Errorf("invalid ui.theme: %q", c.UI.Theme)
	}
	if _, ok := model.ParseTab(c.UI.StartTab); !ok {
		return fmt.Errorf("invalid ui.start_tab: %q", c.UI.StartTab)
	}
	if c.UI.Density < 1 || c.UI.Density > 3 {
		return fmt.Errorf("ui.density must be between 1 and 3, got %d", c.UI.Density)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("parse log.level %q: %w", c.Log.Level, err)
	}
	return nil
}

func (c RuntimeConfig) Theme() model.Theme {
	t, _ := model.ParseTheme(c.UI.Theme)
	return t
}

func (c RuntimeConfig) StartTab() model.Tab {
	t, _ := model.ParseTab(c.UI.StartTab)
	return t
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
