package config_fx

import (
	"go.uber.org/fx"

	"tripagent/internal/config"
)

// Module loads the configuration from path. Overrides run after loading,
// letting a command adjust settings such as the log level.
func Module(path string, overrides ...func(*config.Config)) fx.Option {
	return fx.Provide(func() (*config.Config, error) {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		for _, o := range overrides {
			o(cfg)
		}
		return cfg, nil
	})
}
