package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	buildifyerrors "github.com/alexisbeaulieu97/buildify/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads the configuration at path on top of Default and validates it.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, buildifyerrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, buildifyerrors.NewParseError(path, ExtractLine(err), err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if cfg == nil {
		return buildifyerrors.NewValidationError("config", "configuration is nil", nil)
	}
	return ValidateStruct(cfg)
}

// ExtractLine pulls the line number out of a yaml.v3 error message, or 0.
func ExtractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
