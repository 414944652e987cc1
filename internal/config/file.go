package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// StructuredFileConfig is the on-disk shape of the config file. The same
// struct is decoded from JSON and from YAML.
type StructuredFileConfig struct {
	App struct {
		ManufField string `json:"manuf_field" yaml:"manuf_field"`
		Version    string `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Storage struct {
		Backend string `json:"backend" yaml:"backend"`
		Bucket  string `json:"bucket" yaml:"bucket"`
		Key     string `json:"key" yaml:"key"`

		S3 struct {
			Region          string `json:"region" yaml:"region"`
			Endpoint        string `json:"endpoint" yaml:"endpoint"`
			UsePathStyle    bool   `json:"use_path_style" yaml:"use_path_style"`
			AccessKeyID     string `json:"access_key_id" yaml:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key" yaml:"secret_access_key"`
		} `json:"s3,omitempty" yaml:"s3,omitempty"`

		HTTP struct {
			BaseURL string   `json:"base_url" yaml:"base_url"`
			Timeout Duration `json:"timeout" yaml:"timeout"`
		} `json:"http,omitempty" yaml:"http,omitempty"`

		Files struct {
			Dir string `json:"dir" yaml:"dir"`
		} `json:"files,omitempty" yaml:"files,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, path)
	}

	cfg := &StructuredConfig{
		App: App{
			ManufField: fileCfg.App.ManufField,
			Version:    fileCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    fileCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			Backend: fileCfg.Storage.Backend,
			Bucket:  fileCfg.Storage.Bucket,
			Key:     fileCfg.Storage.Key,
			S3: S3{
				Region:          fileCfg.Storage.S3.Region,
				Endpoint:        fileCfg.Storage.S3.Endpoint,
				UsePathStyle:    fileCfg.Storage.S3.UsePathStyle,
				AccessKeyID:     fileCfg.Storage.S3.AccessKeyID,
				SecretAccessKey: fileCfg.Storage.S3.SecretAccessKey,
			},
			HTTP: HTTP{
				BaseURL: fileCfg.Storage.HTTP.BaseURL,
				Timeout: time.Duration(fileCfg.Storage.HTTP.Timeout),
			},
			Files: Files{
				Dir: fileCfg.Storage.Files.Dir,
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML, and from plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	return d.set(v)
}

// UnmarshalYAML implements the goccy/go-yaml BytesUnmarshaler interface.
func (d *Duration) UnmarshalYAML(b []byte) error {
	var v interface{}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return err
	}

	return d.set(v)
}

func (d *Duration) set(v interface{}) error {
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case uint64:
		*d = Duration(time.Duration(value))
	case int64:
		*d = Duration(time.Duration(value))
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
	case nil:
		*d = 0
	default:
		return fmt.Errorf("invalid duration %v", v)
	}

	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
