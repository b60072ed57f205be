package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bennypowers.dev/vss/internal/log"
	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// PackageJSONKey is the package.json field holding settings
const PackageJSONKey = "vueScriptSetup"

// RCNames are the rc files looked up in the working directory, in order
var RCNames = []string{
	".vuescriptsetuprc.yaml",
	".vuescriptsetuprc.yml",
	".vuescriptsetuprc.json",
	".vuescriptsetuprc.toml",
}

// ErrUnknownFormat is returned for a config file with an unsupported extension
var ErrUnknownFormat = errors.New("unknown config file format")

// Load builds the settings for dir: defaults, then package.json, then the
// explicit config file or the first rc file found.
func Load(dir, explicit string) (Config, error) {
	cfg := Default()

	pkg, err := readPackageJSON(dir)
	if err != nil {
		return cfg, err
	}
	if pkg != nil {
		cfg.merge(*pkg)
	}

	path := explicit
	if path == "" {
		path = findRC(dir)
	}
	if path == "" {
		return cfg, nil
	}

	rc, err := readFile(path)
	if err != nil {
		return cfg, err
	}
	log.Debug("Loaded config from %s", path)
	cfg.merge(*rc)
	return cfg, nil
}

// findRC returns the first rc file present in dir
func findRC(dir string) string {
	for _, name := range RCNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// readFile decodes a config file chosen by its extension
func readFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-selected config file
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var f fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".json":
		err = json.Unmarshal(jsonc.ToJSON(data), &f)
	case ".toml":
		_, err = toml.Decode(string(data), &f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &f, nil
}

// readPackageJSON reads the settings field of package.json in dir.
// A missing file or field is not an error.
func readPackageJSON(dir string) (*fileConfig, error) {
	path := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(path) //nolint:gosec // G304: workspace package.json
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read package.json: %w", err)
	}

	var pkg map[string]json.RawMessage
	if err := json.Unmarshal(jsonc.ToJSON(data), &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse package.json: %w", err)
	}

	raw, ok := pkg[PackageJSONKey]
	if !ok {
		return nil, nil
	}

	var f fileConfig
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%s in package.json must be an object: %w", PackageJSONKey, err)
	}
	return &f, nil
}
