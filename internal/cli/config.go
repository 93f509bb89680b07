package cli

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wireframe/pkg/errors"
	"github.com/matzehuels/wireframe/pkg/pipeline"
	"github.com/matzehuels/wireframe/pkg/render/wireframe"
)

// defaultConfigFile is read when present and no --config is given.
const defaultConfigFile = "wireframe.toml"

// fileConfig is the TOML configuration file:
//
//	style = "simple"
//	overlay = false
//	concurrency = 8
//
//	[layout]
//	canvas_height = 2400
//	two_column_threshold = 6
//	bullet_rows = { min = 4, max = 14 }
//
//	[layout.minimums]
//	faq = 300
//
//	[cache]
//	redis = "redis://localhost:6379/0"
type fileConfig struct {
	Style       string           `toml:"style"`
	Overlay     *bool            `toml:"overlay"`
	Concurrency int              `toml:"concurrency"`
	Layout      wireframe.Config `toml:"layout"`
	Cache       struct {
		Redis string `toml:"redis"`
	} `toml:"cache"`

	// path is where the config came from; empty for built-in defaults.
	path string
	// unknown lists keys the decoder did not recognize.
	unknown []string
}

func defaultFileConfig() fileConfig {
	return fileConfig{Layout: wireframe.DefaultConfig()}
}

// loadConfig reads path over the defaults. An empty path tries
// wireframe.toml in the working directory and silently falls back to the
// defaults when it is missing; an explicit path must exist.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	for _, k := range md.Undecoded() {
		cfg.unknown = append(cfg.unknown, k.String())
	}
	cfg.path = path

	if cfg.Style != "" {
		if err := pipeline.ValidateStyle(cfg.Style); err != nil {
			return cfg, err
		}
	}
	if err := cfg.Layout.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// overlay returns the configured overlay flag, defaulting to on.
func (f fileConfig) overlay() bool {
	return f.Overlay == nil || *f.Overlay
}

// describe summarizes the source for logs.
func (f fileConfig) describe() string {
	if f.path == "" {
		return "defaults"
	}
	if len(f.unknown) > 0 {
		return f.path + " (ignored: " + strings.Join(f.unknown, ", ") + ")"
	}
	return f.path
}
