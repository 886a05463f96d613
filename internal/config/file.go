// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk shape of a config file. The same
// struct is decoded from JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		InactivityDelay Duration `json:"inactivity_delay" yaml:"inactivity_delay"`
	} `json:"app" yaml:"app"`

	Storage struct {
		VaultPath string `json:"vault_path" yaml:"vault_path"`
	} `json:"storage" yaml:"storage"`

	Log struct {
		FilePath string `json:"file" yaml:"file"`
		Level    string `json:"level" yaml:"level"`
	} `json:"log" yaml:"log"`
}

// parseFile decodes the config file at path. The format is picked by the
// extension: ".json" or ".yaml"/".yml".
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, filepath.Ext(path))
	}

	return &StructuredConfig{
		App: App{
			InactivityDelay: time.Duration(fileCfg.App.InactivityDelay),
		},
		Storage: Storage{
			VaultPath: fileCfg.Storage.VaultPath,
		},
		Log: Log{
			FilePath: fileCfg.Log.FilePath,
			Level:    fileCfg.Log.Level,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h", "30s" in both JSON and YAML, and from integer nanoseconds in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
