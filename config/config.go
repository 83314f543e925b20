package config

import (
	"liquidator/core"
	"liquidator/service/position"
	"liquidator/store/db"
	"liquidator/worker/scanner"

	"github.com/asaskevich/govalidator"
	configUtil "github.com/fox-one/pkg/config"
)

// Load load config file, env LIQUIDATOR_* overrides it
func Load(configFile string, config *core.Config) error {
	configUtil.AutomaticLoadEnv("LIQUIDATOR")
	if err := configUtil.LoadYaml(configFile, config); err != nil {
		return err
	}

	withDefaults(config)
	return Validate(config)
}

func withDefaults(cfg *core.Config) {
	if cfg.DB.Dialect == "" {
		cfg.DB.Dialect = db.DialectPostgres
	}

	if cfg.DB.Port == 0 && cfg.DB.Dialect == db.DialectPostgres {
		cfg.DB.Port = 5432
	}

	if cfg.Indexer.First <= 0 {
		cfg.Indexer.First = position.DefaultFirst
	}

	if cfg.Worker.Spec == "" {
		cfg.Worker.Spec = scanner.DefaultSpec
	}
}

// Validate check required endpoints and addresses
func Validate(cfg *core.Config) error {
	_, err := govalidator.ValidateStruct(cfg)
	return err
}
