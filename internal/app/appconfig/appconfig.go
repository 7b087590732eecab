package appconfig

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/epmviz/backend/internal/app/appcontext"
)

const envPrefix = "epmviz"

func Parse(ctx appcontext.Ctx) (*Config, error) {
	err := godotenv.Load(".env")
	if err != nil {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var config ConfigSpec
	err = envconfig.Process(envPrefix, &config)
	if err != nil {
		_ = envconfig.Usage(envPrefix, &config)
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := config.check(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}
