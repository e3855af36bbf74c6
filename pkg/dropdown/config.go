package dropdown

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	widgeterrors "github.com/go-widgets/dropdown/pkg/errors"
)

// LoadSettingsFile reads a YAML settings file and merges it over
// DefaultSettings: fields left empty in the file keep their default
// value. A missing file is not an error and yields the defaults.
func LoadSettingsFile(path string) (Settings, error) {
	defaults := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults, nil
		}
		return defaults, &widgeterrors.WidgetError{
			Op:   "dropdown.LoadSettingsFile",
			Kind: widgeterrors.KindConfig,
			Err:  fmt.Errorf("failed to read %s: %w", path, err),
		}
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return defaults, &widgeterrors.WidgetError{
			Op:   "dropdown.LoadSettingsFile",
			Kind: widgeterrors.KindConfig,
			Err:  fmt.Errorf("failed to parse %s: %w", path, err),
		}
	}

	return mergeSettings(defaults, loaded), nil
}

// mergeSettings fills empty fields of loaded from defaults, field by
// field, mirroring the per-field fallback used for widget themes.
func mergeSettings(defaults, loaded Settings) Settings {
	if loaded.Placeholder == "" {
		loaded.Placeholder = defaults.Placeholder
	}
	if loaded.ContainerClass == "" {
		loaded.ContainerClass = defaults.ContainerClass
	}
	if loaded.OpenedClass == "" {
		loaded.OpenedClass = defaults.OpenedClass
	}
	if loaded.ClosedClass == "" {
		loaded.ClosedClass = defaults.ClosedClass
	}
	if loaded.ButtonClass == "" {
		loaded.ButtonClass = defaults.ButtonClass
	}
	if loaded.ArrowUpClass == "" {
		loaded.ArrowUpClass = defaults.ArrowUpClass
	}
	if loaded.ArrowDownClass == "" {
		loaded.ArrowDownClass = defaults.ArrowDownClass
	}
	if loaded.ItemClass == "" {
		loaded.ItemClass = defaults.ItemClass
	}
	if loaded.ActiveItemClass == "" {
		loaded.ActiveItemClass = defaults.ActiveItemClass
	}
	return loaded
}
