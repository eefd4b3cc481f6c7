package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	ApiKey = "api-key"

	appDir   = "hyfetch"
	fileName = "config"
	rcFile   = ".hyfetchrc"
)

var loadOptions = ini.LoadOptions{
	Loose:                   true,
	Insensitive:             false,
	IgnoreInlineComment:     true,
	SkipUnrecognizableLines: true,
}

// Layers returns the config files in the order they should be applied: the later file wins.
// Only existing files are returned.
func Layers() []string {
	var candidates []string
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, rcFile))
	}

	for _, dir := range configDirs() {
		candidates = append(candidates, filepath.Join(dir, appDir, fileName))
	}

	if home, err := configHome(); err == nil {
		candidates = append(candidates, filepath.Join(home, appDir, fileName))
	}

	var result []string
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			result = append(result, candidate)
		}
	}

	return result
}

// Load merges all the passed files into a single flat key-value map.
// The files have no sections, every key belongs to the default one.
func Load(layers []string) (map[string]string, error) {
	if len(layers) == 0 {
		return map[string]string{}, nil
	}

	sources := make([]interface{}, len(layers))
	for i, layer := range layers {
		sources[i] = layer
	}

	file, err := ini.LoadSources(loadOptions, sources[0], sources[1:]...)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	return file.Section(ini.DefaultSection).KeysHash(), nil
}

// SavePath is the file in which the "save key" command stores its value
func SavePath() (string, error) {
	home, err := configHome()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, appDir, fileName), nil
}

// SaveKey stores the key into the file, replacing the previous value
// and keeping all other settings untouched.
func SaveKey(path string, key string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	file, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return fmt.Errorf("unable to read config: %w", err)
	}

	file.Section(ini.DefaultSection).Key(ApiKey).SetValue(key)

	return file.SaveTo(path)
}

func configHome() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.New("unable to determine the config directory")
	}

	return filepath.Join(home, ".config"), nil
}

// configDirs lists system-wide directories, the most important one first
func configDirs() []string {
	value := os.Getenv("XDG_CONFIG_DIRS")
	if value == "" {
		value = "/etc/xdg"
	}

	var dirs []string
	for _, dir := range strings.Split(value, string(os.PathListSeparator)) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}

	// Apply the least important directory first so that the most important one wins
	for i, j := 0, len(dirs)-1; i < j; i, j = i+1, j-1 {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}

	return dirs
}
