package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration,
// including the config file itself and keybinding conflicts. An empty
// configPath skips the file check.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.validateKeybindings(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.TUI.ToastTTL > 0 && c.TUI.ToastTTL < toastTTLFloor {
		warnings = append(warnings, ValidationWarning{
			Category: "TUI",
			Item:     "toast_ttl",
			Message:  fmt.Sprintf("toast_ttl %s is shorter than %s; toasts may vanish before they can be read", c.TUI.ToastTTL, toastTTLFloor),
		})
	}

	return warnings
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// validateKeybindings rejects empty keys and keys bound to more than one
// action.
func (c *Config) validateKeybindings() error {
	actions := []struct {
		name string
		keys []string
	}{
		{"dismiss", c.Keybindings.Dismiss},
		{"clear_all", c.Keybindings.ClearAll},
		{"next", c.Keybindings.Next},
		{"prev", c.Keybindings.Prev},
	}

	var errs criterio.FieldErrorsBuilder
	owner := make(map[string]string)

	for _, a := range actions {
		for i, k := range a.keys {
			field := fmt.Sprintf("keybindings.%s[%d]", a.name, i)
			if k == "" {
				errs = errs.Append(field, fmt.Errorf("key cannot be empty"))
				continue
			}
			if prev, ok := owner[k]; ok && prev != a.name {
				errs = errs.Append(field, fmt.Errorf("key %q already bound to %s", k, prev))
				continue
			}
			owner[k] = a.name
		}
	}

	return errs.ToError()
}
