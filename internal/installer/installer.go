// Package installer wires the session logger hooks into a project's
// .claude/settings.json.
package installer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeveck/claude-session-logger/internal/config"
)

// SettingsPath is the Claude Code settings file relative to the
// project root.
var SettingsPath = filepath.Join(".claude", "settings.json")

// hookEntry mirrors the settings.json hook schema.
type hookEntry struct {
	Hooks []hookCommand `json:"hooks"`
}

type hookCommand struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

// hooksConfig returns the hook wiring for the given binary invocation.
func hooksConfig(binary string) map[string][]hookEntry {
	return map[string][]hookEntry{
		"Stop": {{Hooks: []hookCommand{
			{Type: "command", Command: binary + " stop-hook"},
		}}},
		"SubagentStop": {{Hooks: []hookCommand{
			{Type: "command", Command: binary + " subagent-stop-hook"},
		}}},
	}
}

// Options configures an installation.
type Options struct {
	// ProjectDir is the project root (default: current directory).
	ProjectDir string
	// Binary is the command used in hook entries (default: session-logger).
	Binary string
	// Timezone is written to the YAML config for log timestamps.
	Timezone string
}

// Installed reports whether the Stop hook is already wired up.
func Installed(projectDir string) bool {
	data, err := os.ReadFile(filepath.Join(projectDir, SettingsPath))
	if err != nil {
		return false
	}
	var settings struct {
		Hooks map[string]json.RawMessage `json:"hooks"`
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return false
	}
	_, ok := settings.Hooks["Stop"]
	return ok
}

// Install merges the hook configuration into settings.json, preserving
// unrelated settings and hooks, writes the timezone into the YAML
// config, and creates the logs directory. Re-running replaces only the
// Stop and SubagentStop entries.
func Install(opts Options) error {
	if opts.ProjectDir == "" {
		opts.ProjectDir = "."
	}
	if opts.Binary == "" {
		opts.Binary = "session-logger"
	}

	settingsPath := filepath.Join(opts.ProjectDir, SettingsPath)
	settings, err := readSettings(settingsPath)
	if err != nil {
		return err
	}

	var hooks map[string]json.RawMessage
	if raw, ok := settings["hooks"]; ok {
		if err := json.Unmarshal(raw, &hooks); err != nil {
			return fmt.Errorf("existing hooks config is malformed: %w", err)
		}
	}
	if hooks == nil {
		hooks = make(map[string]json.RawMessage)
	}

	for event, entries := range hooksConfig(opts.Binary) {
		encoded, err := json.Marshal(entries)
		if err != nil {
			return err
		}
		hooks[event] = encoded
	}

	hooksRaw, err := json.Marshal(hooks)
	if err != nil {
		return err
	}
	settings["hooks"] = hooksRaw

	if err := writeSettings(settingsPath, settings); err != nil {
		return err
	}

	cfg, err := config.Load(filepath.Join(opts.ProjectDir, config.DefaultPath))
	if err != nil {
		cfg = config.Default()
	}
	if opts.Timezone != "" {
		cfg.Timezone = opts.Timezone
	}
	if err := config.Save(filepath.Join(opts.ProjectDir, config.DefaultPath), cfg); err != nil {
		return err
	}

	return os.MkdirAll(filepath.Join(opts.ProjectDir, cfg.LogDir), 0755)
}

// readSettings loads settings.json as a generic object so unrelated
// keys survive the rewrite. Missing or unparsable files start fresh,
// matching the original installer.
func readSettings(path string) (map[string]json.RawMessage, error) {
	settings := make(map[string]json.RawMessage)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return make(map[string]json.RawMessage), nil
	}
	return settings, nil
}

func writeSettings(path string, settings map[string]json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
