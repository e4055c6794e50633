package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/stagecrypt/internal/errors"
	"github.com/PolarWolf314/stagecrypt/internal/secrets"
	"github.com/PolarWolf314/stagecrypt/internal/utils"
)

const (
	minWorkFactor = 1
	maxWorkFactor = 30
)

// Settings is the resolved secrets configuration for one invocation.
type Settings struct {
	ProjectRoot    string
	SecretsDir     string
	Format         secrets.Format
	Armor          bool
	WorkFactor     int
	PreflightEvent string
	Audit          bool

	// Source is the file the settings were read from.
	Source string
}

// SecretsPath returns the absolute directory holding the stage files.
func (s *Settings) SecretsPath() string {
	return filepath.Join(s.ProjectRoot, s.SecretsDir)
}

// Invocation builds the core invocation context for a stage.
func (s *Settings) Invocation(stage, password string) secrets.Invocation {
	return secrets.Invocation{
		Stage:       stage,
		Password:    password,
		ProjectRoot: s.ProjectRoot,
		SecretsDir:  s.SecretsDir,
	}
}

// TransformOptions returns cipher options for encrypting with these settings.
func (s *Settings) TransformOptions() secrets.TransformOptions {
	return secrets.TransformOptions{
		Format:     s.Format,
		Armor:      s.Armor,
		WorkFactor: s.WorkFactor,
	}
}

// FindProjectRoot walks up from start to the nearest directory holding a
// stagecrypt config or a host manifest. Returns "" if none is found.
func FindProjectRoot(start string) (string, error) {
	markers := append([]string{ConfigFileName}, ManifestFileNames...)
	return utils.FindProjectRoot(start, markers...)
}

// FindConfigFile returns the settings file to use under projectRoot,
// preferring ConfigFileName over host manifests.
func FindConfigFile(projectRoot string) (string, error) {
	for _, name := range append([]string{ConfigFileName}, ManifestFileNames...) {
		path := filepath.Join(projectRoot, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: no %s or %s found in %s", kerrors.ErrConfiguration,
		ConfigFileName, strings.Join(ManifestFileNames, "/"), projectRoot)
}

// Load resolves the settings for projectRoot. configPath selects a specific
// file; when empty the file is discovered with FindConfigFile.
func Load(projectRoot, configPath string) (*Settings, error) {
	if projectRoot == "" {
		return nil, fmt.Errorf("%w: project root is not set", kerrors.ErrConfiguration)
	}

	if configPath == "" {
		found, err := FindConfigFile(projectRoot)
		if err != nil {
			return nil, err
		}
		configPath = found
	}

	var (
		config *ProjectConfig
		err    error
	)
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".toml":
		config, err = LoadProjectConfig(configPath)
	case ".yml", ".yaml":
		config, err = LoadManifest(configPath)
	default:
		return nil, fmt.Errorf("%w: unsupported config file %s (expected .toml, .yml or .yaml)", kerrors.ErrConfiguration, configPath)
	}
	if err != nil {
		return nil, err
	}

	settings, err := FromConfig(projectRoot, config)
	if err != nil {
		return nil, err
	}
	settings.Source = configPath
	return settings, nil
}

// FromConfig applies defaults to a parsed config and validates it.
func FromConfig(projectRoot string, config *ProjectConfig) (*Settings, error) {
	sc := config.Secrets

	if filepath.IsAbs(sc.LocalPath) {
		return nil, fmt.Errorf("%w: local path %q must be relative to the project root", kerrors.ErrConfiguration, sc.LocalPath)
	}

	format, err := secrets.ParseFormat(sc.Format)
	if err != nil {
		return nil, err
	}

	workFactor := sc.WorkFactor
	if workFactor == 0 {
		workFactor = secrets.DefaultWorkFactor
	}
	if workFactor < minWorkFactor || workFactor > maxWorkFactor {
		return nil, fmt.Errorf("%w: work factor %d out of range (%d-%d)", kerrors.ErrConfiguration, workFactor, minWorkFactor, maxWorkFactor)
	}

	event := strings.TrimSpace(sc.PreflightEvent)
	if event == "" {
		event = DefaultPreflightEvent
	}

	return &Settings{
		ProjectRoot:    projectRoot,
		SecretsDir:     filepath.Clean(sc.LocalPath),
		Format:         format,
		Armor:          sc.Armor,
		WorkFactor:     workFactor,
		PreflightEvent: event,
		Audit:          sc.Audit,
	}, nil
}
