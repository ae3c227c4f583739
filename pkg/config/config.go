// Copyright (c) 2025, OpenArc Project.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Settings holds the runtime configuration consumed by the telemetry
// subsystem.
type Settings struct {
	// EnableTelemetry selects the remote-submitting backend when true;
	// otherwise sessions use the discard backend.
	EnableTelemetry bool `yaml:"enable_telemetry"`

	// TelemetryEndpoint is the URL sessions are submitted to.
	TelemetryEndpoint string `yaml:"telemetry_endpoint"`

	// VerifyEndpoint is the URL used for login verification.
	VerifyEndpoint string `yaml:"verify_endpoint"`

	// Username and Token authenticate submissions and verification.
	Username string `yaml:"username"`
	Token    string `yaml:"token"`

	// ConfigDir is the directory holding durable state such as the
	// anonymous installation identifier.
	ConfigDir string `yaml:"config_dir"`

	// Emulation knobs reported as UserConfig fields.
	CPUCore          int     `yaml:"cpu_core"`
	ResolutionFactor float64 `yaml:"resolution_factor"`
	ToggleFramelimit bool    `yaml:"toggle_framelimit"`
}

// Default returns settings with built-in defaults: telemetry off, no
// endpoints, and the platform user configuration directory.
func Default() *Settings {
	s := &Settings{
		ResolutionFactor: 1.0,
		ToggleFramelimit: true,
	}
	if dir, err := os.UserConfigDir(); err == nil {
		s.ConfigDir = filepath.Join(dir, "openarc")
	}
	return s
}

// Load resolves settings from defaults, the YAML file at path (skipped when
// path is empty or the file does not exist), and ARCTEL_* environment
// variables, in that order.
func Load(path string) (*Settings, error) {
	s := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	s.applyEnv()
	return s, nil
}

// applyEnv overlays ARCTEL_* environment variables onto the settings.
func (s *Settings) applyEnv() {
	if v := os.Getenv("ARCTEL_ENABLE_TELEMETRY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.EnableTelemetry = b
		}
	}
	if v := os.Getenv("ARCTEL_TELEMETRY_ENDPOINT"); v != "" {
		s.TelemetryEndpoint = v
	}
	if v := os.Getenv("ARCTEL_VERIFY_ENDPOINT"); v != "" {
		s.VerifyEndpoint = v
	}
	if v := os.Getenv("ARCTEL_USERNAME"); v != "" {
		s.Username = v
	}
	if v := os.Getenv("ARCTEL_TOKEN"); v != "" {
		s.Token = v
	}
	if v := os.Getenv("ARCTEL_CONFIG_DIR"); v != "" {
		s.ConfigDir = v
	}
}

// HasCredentials reports whether the settings carry everything the
// remote-submitting backend needs. The backend itself does not re-validate;
// this check belongs to the configuration layer.
func (s *Settings) HasCredentials() bool {
	return s.TelemetryEndpoint != "" && s.Username != "" && s.Token != ""
}
