package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/epmviz/backend/cmd/app/cli/render"
	"github.com/epmviz/backend/cmd/app/server"
	"github.com/epmviz/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "epmviz",
		Description: "Backend for the EPM agent-trajectory scene. Built with Go, fiber and go.uber.org/fx. Uses Redis for viewer sessions and NATS for session events when configured.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			render.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
