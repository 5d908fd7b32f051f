package config

import (
	_ "embed"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"

	// DefaultPrompt numbers each input line, reproducing the classic
	// teaching-shell prompt.
	DefaultPrompt = `\#: `
)

// Configuration holds the user-tunable parts of the shell.
type Configuration struct {
	configFs afero.Fs

	// Motd is printed once at startup when the shell is interactive.
	Motd string `json:"motd"`

	// Prompt is the prompt template. \# expands to the line number and
	// \w to the working directory.
	Prompt string `json:"prompt" validate:"required"`

	// DefaultPath is the search path used when PATH is not set.
	DefaultPath string `json:"default_path"`

	// AuditLog names a JSON-lines log of dispatched commands, relative
	// to the configuration directory. Empty disables audit logging.
	AuditLog string `json:"audit_log"`

	// HistoryLimit caps the history builtin's list. 0 keeps everything.
	HistoryLimit int `json:"history_limit" validate:"gte=0"`
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

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewOsFs()
	}
	return c.configFs
}

// OpenAuditLog opens the audit log in an append only state. It returns
// (nil, nil) when audit logging is disabled.
func (c *Configuration) OpenAuditLog() (afero.File, error) {
	if c.AuditLog == "" {
		return nil, nil
	}
	return c.fs().OpenFile(c.AuditLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadAuditLog opens the audit log for reading, or (nil, nil) when audit
// logging is disabled.
func (c *Configuration) ReadAuditLog() (afero.File, error) {
	if c.AuditLog == "" {
		return nil, nil
	}
	return c.fs().OpenFile(c.AuditLog, os.O_RDONLY, 0600)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
