package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	kerrors "github.com/PolarWolf314/stagecrypt/internal/errors"
)

// manifestPrefix is where the settings live under the manifest's custom block.
const manifestPrefix = "pluginConfig.secrets."

// GetNested follows a dot-delimited key through nested maps. It reports false
// when any segment is missing or is not a map.
func GetNested(m map[string]any, key string) (any, bool) {
	var cur any = m
	for _, part := range strings.Split(key, ".") {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = node[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// LoadManifest reads the secrets settings from a host manifest.
func LoadManifest(path string) (*ProjectConfig, error) {
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", kerrors.ErrConfiguration, name, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", kerrors.ErrConfiguration, name, err)
	}

	custom, _ := doc["custom"].(map[string]any)

	localPath, ok := GetNested(custom, manifestPrefix+"localPath")
	if !ok || localPath == nil {
		return nil, fmt.Errorf("%w: %s is missing custom.%slocalPath", kerrors.ErrConfiguration, name, manifestPrefix)
	}

	config := &ProjectConfig{}
	fields := []struct {
		key string
		dst any
	}{
		{"localPath", &config.Secrets.LocalPath},
		{"format", &config.Secrets.Format},
		{"armor", &config.Secrets.Armor},
		{"workFactor", &config.Secrets.WorkFactor},
		{"preflightEvent", &config.Secrets.PreflightEvent},
		{"audit", &config.Secrets.Audit},
	}
	for _, f := range fields {
		v, ok := GetNested(custom, manifestPrefix+f.key)
		if !ok || v == nil {
			continue
		}
		if err := assign(f.dst, v); err != nil {
			return nil, fmt.Errorf("%w: %s: custom.%s%s %v", kerrors.ErrConfiguration, name, manifestPrefix, f.key, err)
		}
	}

	return config, nil
}

func assign(dst any, v any) error {
	switch d := dst.(type) {
	case *string:
		switch s := v.(type) {
		case string:
			*d = s
		case int, bool, float64:
			*d = fmt.Sprint(s)
		default:
			return fmt.Errorf("must be a string, got %T", v)
		}
	case *bool:
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("must be a boolean, got %T", v)
		}
		*d = b
	case *int:
		i, ok := v.(int)
		if !ok {
			return fmt.Errorf("must be an integer, got %T", v)
		}
		*d = i
	}
	return nil
}
