package configs

import (
	"fmt"
	"path/filepath"

	kerrors "github.com/PolarWolf314/stagecrypt/internal/errors"
)

const (
	// ConfigFileName is stagecrypt's own configuration file.
	ConfigFileName = ".stagecrypt.toml"

	// DefaultPreflightEvent is the host lifecycle point the preflight check runs at.
	DefaultPreflightEvent = "before:deploy:cleanup"
)

// ManifestFileNames are host manifests that may carry the secrets settings.
var ManifestFileNames = []string{"serverless.yml", "serverless.yaml"}

// ProjectConfig is the on-disk layout of ConfigFileName.
type ProjectConfig struct {
	Secrets SecretsConfig `toml:"secrets"`
}

type SecretsConfig struct {
	LocalPath      string `toml:"local_path"`
	Format         string `toml:"format,omitempty"`
	Armor          bool   `toml:"armor"`
	WorkFactor     int    `toml:"work_factor,omitempty"`
	PreflightEvent string `toml:"preflight_event,omitempty"`
	Audit          bool   `toml:"audit"`
}

// LoadProjectConfig reads ConfigFileName-style TOML. The local_path key must
// be present, though it may be empty.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	config := &ProjectConfig{}

	md, err := LoadTOML(path, config)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load %s: %v", kerrors.ErrConfiguration, filepath.Base(path), err)
	}
	if !md.IsDefined("secrets", "local_path") {
		return nil, fmt.Errorf("%w: %s is missing secrets.local_path", kerrors.ErrConfiguration, filepath.Base(path))
	}

	return config, nil
}

// SaveProjectConfig writes config to ConfigFileName under projectRoot.
func SaveProjectConfig(projectRoot string, config *ProjectConfig) error {
	path := filepath.Join(projectRoot, ConfigFileName)

	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save %s: %w", ConfigFileName, err)
	}

	return nil
}
