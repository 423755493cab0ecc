// Package assets embeds the configuration shipped with the library: the
// built-in legacy style tables in YAML form.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed styletables/*.yaml
var styleTables embed.FS

// Sentinel errors for asset loading.
var (
	ErrStyleTableNotFound = errors.New("style table not found")
	ErrInvalidAssetName   = errors.New("invalid asset name")
)

// StyleTable returns the raw YAML of an embedded style table by name,
// without the .yaml extension.
func StyleTable(name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	data, err := styleTables.ReadFile("styletables/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStyleTableNotFound, name)
	}
	return data, nil
}

// StyleTableNames lists the embedded style tables, for CLI help output.
func StyleTableNames() []string {
	entries, err := fs.ReadDir(styleTables, "styletables")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	return names
}

// validateName rejects names that could traverse out of the asset tree.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}
