package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"
)

type Configuration struct {
	configFs         afero.Fs
	configurationDir string

	Name           string `json:"name" env:"MYSHELL_NAME" validate:"required,printascii"`
	FallbackPrompt string `json:"fallback_prompt" env:"MYSHELL_FALLBACK_PROMPT" validate:"required"`
	ColorPrompt    bool   `json:"color_prompt" env:"MYSHELL_COLOR_PROMPT"`
	EventLog       string `json:"event_log" env:"MYSHELL_EVENT_LOG"`
	Debug          bool   `json:"debug" env:"MYSHELL_DEBUG"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// ApplyEnv overrides fields from MYSHELL_* environment variables that are
// set.
func (c *Configuration) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	return nil
}

// Dir is the directory the configuration was loaded from.
func (c *Configuration) Dir() string {
	return c.configurationDir
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewOsFs()
	}
	return c.configFs
}

// EventLogPath resolves the event log against the configuration directory.
// It's empty if the event log is disabled.
func (c *Configuration) EventLogPath() string {
	switch {
	case c.EventLog == "":
		return ""
	case filepath.IsAbs(c.EventLog):
		return c.EventLog
	default:
		return filepath.Join(c.configurationDir, c.EventLog)
	}
}

// OpenEventLog opens the event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	logPath := c.EventLogPath()
	if logPath == "" {
		return nil, os.ErrNotExist
	}
	return c.fs().OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// Default returns the embedded configuration rooted at dir on fsys.
func Default(fsys afero.Fs, dir string) *Configuration {
	out := defaultConfig()
	out.configFs = fsys
	out.configurationDir = dir
	return out
}
