package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"itsupport/internal/core"
)

// Config описывает параметры утилиты.
type Config struct {
	Agent struct {
		LogLevel string `yaml:"log_level"`
	} `yaml:"agent"`
	Prompt struct {
		Affirmative string `yaml:"affirmative"`
	} `yaml:"prompt"`
	Menu struct {
		Title          string `yaml:"title"`
		Subtitle       string `yaml:"subtitle"`
		InvalidPauseMS int    `yaml:"invalid_pause_ms"`
	} `yaml:"menu"`
	Executor struct {
		Shell     string   `yaml:"shell"`
		ShellArgs []string `yaml:"shell_args"`
	} `yaml:"executor"`
	Actions struct {
		PingTarget      string            `yaml:"ping_target"`
		DriversFile     string            `yaml:"drivers_file"`
		DriversEncoding string            `yaml:"drivers_encoding"`
		ReachabilityURL string            `yaml:"reachability_url"`
		AdminPolicy     map[string]string `yaml:"admin_policy"`
	} `yaml:"actions"`
	Audit struct {
		Enabled    bool   `yaml:"enabled"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"audit"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() Config {
	var cfg Config
	cfg.Agent.LogLevel = "warn"
	cfg.Prompt.Affirmative = "y"
	cfg.Menu.Title = "IT SUPPORT MENU"
	cfg.Menu.Subtitle = "Windows maintenance toolkit"
	cfg.Menu.InvalidPauseMS = 1000
	cfg.Actions.PingTarget = "8.8.8.8"
	cfg.Actions.DriversFile = "drivers_list.txt"
	cfg.Actions.DriversEncoding = "cp850"
	cfg.Actions.ReachabilityURL = "https://www.google.com"
	cfg.Actions.AdminPolicy = map[string]string{}
	cfg.Audit.Enabled = false
	cfg.Audit.SQLitePath = "itsupport-audit.db"
	return cfg
}

// Load читает конфиг из файла YAML, поверх значений по умолчанию.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- путь к конфигу задает оператор.
	if err != nil {
		return cfg, err
	}
	if len(data) == 0 {
		return cfg, errors.New("config file is empty")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate проверяет значения, которые иначе всплыли бы только при выборе пункта.
func (c Config) Validate() error {
	for key, raw := range c.Actions.AdminPolicy {
		if _, err := core.ParsePolicy(raw); err != nil {
			return fmt.Errorf("actions.admin_policy[%s]: %w", key, err)
		}
	}
	if c.Menu.InvalidPauseMS < 0 {
		return errors.New("menu.invalid_pause_ms must not be negative")
	}
	if c.Audit.Enabled && c.Audit.SQLitePath == "" {
		return errors.New("audit.sqlite_path is required when audit is enabled")
	}
	return nil
}
