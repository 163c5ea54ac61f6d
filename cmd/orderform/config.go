package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/carterpaul1/cis453l-project/pkg/domain/model"
)

type config struct {
	ServeRESTAddress string        `envconfig:"serve_rest_address" default:":8080"`
	ServeGRPCAddress string        `envconfig:"serve_grpc_address" default:":8081"`
	ResetDelay       time.Duration `envconfig:"reset_delay" default:"15s"`
	CatalogPath      string        `envconfig:"catalog_path"`
	LogLevel         string        `envconfig:"log_level" default:"info"`
}

func parseEnv() (*config, error) {
	c := new(config)
	if err := envconfig.Process(appID, c); err != nil {
		return nil, errors.Wrap(err, "failed to parse env")
	}
	if c.ResetDelay <= 0 {
		return nil, errors.Errorf("reset delay must be positive, got %s", c.ResetDelay)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}
	return c, nil
}

// loadCatalog falls back to the built-in menu when no file is configured.
func loadCatalog(path string) (*model.Catalog, error) {
	if path == "" {
		return model.DefaultCatalog(), nil
	}
	catalog, err := model.LoadCatalog(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}
	return catalog, nil
}
