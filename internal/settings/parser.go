package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	headlineerrors "github.com/alexisbeaulieu97/headliner/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadFile reads a headline configuration from a .json, .yaml or .yml file.
// Fields missing from the file keep their Default values, so every loaded
// record is fully populated.
func LoadFile(path string) (HeadlineSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return HeadlineSettings{}, headlineerrors.NewParseError(path, 0, err)
	}
	return Decode(path, data)
}

// Decode parses data according to the extension of name.
func Decode(name string, data []byte) (HeadlineSettings, error) {
	cfg := Default()

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return HeadlineSettings{}, headlineerrors.NewParseError(name, extractLine(err), err)
		}
	case ".json", "":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return HeadlineSettings{}, headlineerrors.NewParseError(name, jsonLine(data, err), err)
		}
	default:
		return HeadlineSettings{}, headlineerrors.NewParseError(name, 0, fmt.Errorf("unsupported settings file extension %q", filepath.Ext(name)))
	}

	return cfg, nil
}

// WriteFile encodes s to path, choosing YAML or JSON by extension.
func WriteFile(path string, s HeadlineSettings) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(s)
	default:
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return os.WriteFile(path, data, 0644)
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

// jsonLine maps the byte offset of a JSON syntax or type error to a line number.
func jsonLine(data []byte, err error) int {
	var offset int64
	switch e := err.(type) {
	case *json.SyntaxError:
		offset = e.Offset
	case *json.UnmarshalTypeError:
		offset = e.Offset
	default:
		return 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return strings.Count(string(data[:offset]), "\n") + 1
}
