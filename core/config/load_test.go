package config

import (
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.Nil(t, afero.WriteFile(memFs, "/cfg/config.yaml", []byte("name: minish\ncolor_prompt: false\n"), 0644))

	for _, path := range []string{"/cfg", "/cfg/config.yaml"} {
		t.Run(path, func(t *testing.T) {
			cfg, err := Load(memFs, path)
			require.Nil(t, err)

			assert.Equal(t, "minish", cfg.Name)
			assert.False(t, cfg.ColorPrompt)
			assert.Equal(t, "/cfg", cfg.Dir())

			// Fields missing from the file keep their defaults.
			assert.Equal(t, "myshell$ ", cfg.FallbackPrompt)
			assert.Nil(t, cfg.Validate())
		})
	}
}

func TestLoad_missing(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nowhere")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_unknownField(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.Nil(t, afero.WriteFile(memFs, "/cfg/config.yaml", []byte("history_file: ~/.history\n"), 0644))

	_, err := Load(memFs, "/cfg")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "history_file")
}

func TestInitialize(t *testing.T) {
	memFs := afero.NewMemMapFs()

	path, err := Initialize(memFs, "/new/dir")
	require.Nil(t, err)
	assert.Equal(t, "/new/dir/config.yaml", path)

	// Check that the config is valid
	cfg, err := Load(memFs, "/new/dir")
	require.Nil(t, err)
	assert.Nil(t, cfg.Validate())

	t.Run("no overwrite", func(t *testing.T) {
		_, err := Initialize(memFs, "/new/dir")
		assert.NotNil(t, err)
	})

	t.Run("OpenEventLog", func(t *testing.T) {
		cfg.EventLog = "events.jsonl"
		fd, err := cfg.OpenEventLog()
		require.Nil(t, err)
		_, err = fd.Write([]byte("{}\n"))
		assert.Nil(t, err)
		fd.Close()

		exists, err := afero.Exists(memFs, "/new/dir/events.jsonl")
		assert.Nil(t, err)
		assert.True(t, exists)
	})

	t.Run("OpenEventLog disabled", func(t *testing.T) {
		cfg.EventLog = ""
		_, err := cfg.OpenEventLog()
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}
