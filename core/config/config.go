package config

import (
	_ "embed"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/josephlewis42/cmdexpr/core/compiler"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"

	FormatCompact = "compact"
	FormatPretty  = "pretty"

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	configFs afero.Fs

	// Variables holds the values of byte buffers referenced with <<<.
	Variables    map[string]string `json:"variables"`
	OutputFormat string            `json:"output_format" validate:"required,oneof=compact pretty"`
	Color        string            `json:"color" validate:"required,oneof=always auto never"`
	AppLog       string            `json:"app_log" validate:"required"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	if err := validate.Struct(c); err != nil {
		return err
	}

	for name := range c.Variables {
		if err := validate.Var(name, "required,printascii,excludesall=$"); err != nil {
			return fmt.Errorf("invalid variable name %q: %w", name, err)
		}
	}

	return nil
}

func (c *Configuration) fs() afero.Fs {
	return c.configFs
}

// Resolver returns the configured variables for use by the compiler.
func (c *Configuration) Resolver() compiler.Vars {
	return compiler.VarsFromStrings(c.Variables)
}

// Pretty reports whether trees should be printed in the indented format.
func (c *Configuration) Pretty() bool {
	return c.OutputFormat == FormatPretty
}

// OpenAppLog opens the application log in an append only state.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	return c.fs().OpenFile(c.AppLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

func (c *Configuration) ReadAppLog() (afero.File, error) {
	return c.fs().OpenFile(c.AppLog, os.O_RDONLY, 0600)
}

// Default returns the built-in configuration backed by an in-memory
// filesystem, for use when no configuration directory exists.
func Default() *Configuration {
	out := defaultConfig()
	out.configFs = afero.NewMemMapFs()
	return out
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
