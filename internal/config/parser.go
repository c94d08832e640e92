package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	slerrors "github.com/alexisbeaulieu97/statelayer/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads the YAML document at path over the defaults and validates the
// result. An empty path yields the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		if err := Validate(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, slerrors.NewParseError(path, 0, err)
	}

	return parse(path, data, cfg)
}

// Parse decodes data over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	return parse("<inline>", data, Default())
}

func parse(path string, data []byte, base Config) (*Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, slerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
