package kinova

import (
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config locates the robot description files.
type Config struct {
	// DescriptionPath is the root of the kortex_description package.
	DescriptionPath string `env:"KINOVA_DESCRIPTION_PATH" envDefault:"/usr/local/share/kortex_description"`
	// URDFPath defaults to urdf/gen3.urdf under DescriptionPath.
	URDFPath string `env:"KINOVA_URDF_PATH"`
	// ConvexDir holds one directory of hull files per module name.
	ConvexDir string `env:"KINOVA_CONVEX_DIR" envDefault:"/usr/local/share/mc_kinova/convex"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	return loadConfig(env.Options{})
}

func loadConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	if cfg.URDFPath == "" {
		cfg.URDFPath = filepath.Join(cfg.DescriptionPath, "urdf", "gen3.urdf")
	}
	return cfg, nil
}

// ConvexPath returns the hull directory of the module called name.
func (c Config) ConvexPath(name string) string {
	return filepath.Join(c.ConvexDir, name)
}
