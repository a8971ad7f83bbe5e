package config

import (
	"bytes"
	"io/ioutil"
	"log"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	tempDir := t.TempDir()
	if _, err := Initialize(tempDir, log.New(ioutil.Discard, "", 0)); err != nil {
		t.Fatal(err)
	}

	// Check that the config is valid
	cfg, err := Load(tempDir)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("LoadConfigFile", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, ConfigurationName))
		assert.Nil(t, err)
	})

	t.Run("OpenAppLog", func(t *testing.T) {
		fd, err := cfg.OpenAppLog()
		assert.Nil(t, err)
		fd.Close()
	})

	t.Run("ReadAppLog", func(t *testing.T) {
		fd, err := cfg.ReadAppLog()
		assert.Nil(t, err)
		fd.Close()
	})
}

func TestInitializeKeepsExisting(t *testing.T) {
	configFs := afero.NewMemMapFs()
	existing := []byte("output_format: compact\ncolor: never\napp_log: a.log\n")
	assert.Nil(t, afero.WriteFile(configFs, ConfigurationName, existing, 0600))

	logs := &bytes.Buffer{}
	assert.Nil(t, initializeFs(configFs, log.New(logs, "", 0)))

	actual, err := afero.ReadFile(configFs, ConfigurationName)
	assert.Nil(t, err)
	assert.Equal(t, existing, actual)
	assert.Contains(t, logs.String(), "already exists")
}
