package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := Default(afero.NewMemMapFs(), "/etc/myshell")

	assert.Nil(t, cfg.Validate())
	assert.Equal(t, "myshell", cfg.Name)
	assert.Equal(t, "myshell$ ", cfg.FallbackPrompt)
	assert.Equal(t, "/etc/myshell", cfg.Dir())
	assert.Equal(t, "", cfg.EventLogPath())
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate  func(*Configuration)
		wantErr string
	}{
		"missing name": {
			mutate:  func(c *Configuration) { c.Name = "" },
			wantErr: "name",
		},
		"missing fallback prompt": {
			mutate:  func(c *Configuration) { c.FallbackPrompt = "" },
			wantErr: "fallback_prompt",
		},
		"valid": {
			mutate: func(c *Configuration) { c.Name = "sh" },
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cfg := Default(afero.NewMemMapFs(), ".")
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MYSHELL_NAME", "minish")
	t.Setenv("MYSHELL_DEBUG", "1")
	t.Setenv("MYSHELL_EVENT_LOG", "events.jsonl")

	cfg := Default(afero.NewMemMapFs(), "/cfg")
	require.Nil(t, cfg.ApplyEnv())

	assert.Equal(t, "minish", cfg.Name)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/cfg/events.jsonl", cfg.EventLogPath())

	// Unset variables keep their configured values.
	assert.Equal(t, "myshell$ ", cfg.FallbackPrompt)
}

func TestEventLogPath(t *testing.T) {
	cfg := Default(afero.NewMemMapFs(), "/cfg")

	cfg.EventLog = "/var/log/myshell.jsonl"
	assert.Equal(t, "/var/log/myshell.jsonl", cfg.EventLogPath())

	cfg.EventLog = "logs/events.jsonl"
	assert.Equal(t, "/cfg/logs/events.jsonl", cfg.EventLogPath())
}
