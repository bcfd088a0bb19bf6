package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
)

// KeybindingsFile is the on-disk shape of keybindings.toml.
type KeybindingsFile struct {
	Version  int                 `toml:"version"`
	Bindings map[string][]string `toml:"bindings"`
}

// KeybindingsPath is keybindings.toml next to config.toml.
func KeybindingsPath() string {
	return filepath.Join(Dir(), "keybindings.toml")
}

// LoadKeybindings reads the overrides at path, writing the defaults first when
// the file is missing. Unknown actions are rejected. When the merged result
// differs from the file (new actions since it was written) the file is
// rewritten.
func LoadKeybindings(path string, defaults map[string][]string) (map[string][]string, error) {
	defaults = normalizeActionKeyMap(defaults)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	if err := ensureFile(path, renderKeybindingsTOML(defaults)); err != nil {
		return nil, err
	}

	var file KeybindingsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	changed, err := mergeKeybindings(&file, defaults)
	if err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	if changed {
		if err := os.WriteFile(path, []byte(renderKeybindingsTOML(file.Bindings)), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
	}
	return file.Bindings, nil
}

func mergeKeybindings(file *KeybindingsFile, defaults map[string][]string) (bool, error) {
	if file.Version == 0 {
		file.Version = 1
	}
	if file.Version != 1 {
		return false, fmt.Errorf("unsupported version %d", file.Version)
	}

	merged := make(map[string][]string, len(defaults))
	for action, keys := range defaults {
		merged[action] = append([]string(nil), keys...)
	}
	for action, keys := range file.Bindings {
		a := strings.TrimSpace(action)
		if !isValidActionID(a) {
			return false, fmt.Errorf("invalid action %q", action)
		}
		if _, ok := defaults[a]; !ok {
			return false, fmt.Errorf("unknown action %q", a)
		}
		if len(keys) == 0 {
			return false, fmt.Errorf("action %q: keys are required", a)
		}
		out := make([]string, 0, len(keys))
		for _, key := range keys {
			k := strings.ToLower(strings.TrimSpace(key))
			if k == "" {
				return false, fmt.Errorf("action %q: key cannot be empty", a)
			}
			out = append(out, k)
		}
		merged[a] = out
	}

	changed := !equalActionMaps(file.Bindings, merged)
	file.Bindings = merged
	return changed, nil
}

func renderKeybindingsTOML(bindings map[string][]string) string {
	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	var b bytes.Buffer
	b.WriteString("version = 1\n\n[bindings]\n")
	for _, action := range actions {
		quoted := make([]string, 0, len(bindings[action]))
		for _, k := range bindings[action] {
			quoted = append(quoted, fmt.Sprintf("%q", k))
		}
		fmt.Fprintf(&b, "%s = [%s]\n", action, strings.Join(quoted, ", "))
	}
	return b.String()
}

func ensureFile(path, contents string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func normalizeActionKeyMap(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for action, keys := range in {
		a := strings.TrimSpace(action)
		if !isValidActionID(a) {
			continue
		}
		var ks []string
		for _, key := range keys {
			if k := strings.ToLower(strings.TrimSpace(key)); k != "" {
				ks = append(ks, k)
			}
		}
		if len(ks) > 0 {
			out[a] = ks
		}
	}
	return out
}

func equalActionMaps(a, b map[string][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for action, ka := range a {
		kb, ok := b[action]
		if !ok || len(ka) != len(kb) {
			return false
		}
		for i := range ka {
			if ka[i] != kb[i] {
				return false
			}
		}
	}
	return true
}

// isValidActionID accepts letters, digits and inner dashes.
func isValidActionID(action string) bool {
	if action == "" {
		return false
	}
	for i, ch := range action {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			continue
		}
		if ch == '-' && i > 0 && i < len(action)-1 {
			continue
		}
		return false
	}
	return true
}
