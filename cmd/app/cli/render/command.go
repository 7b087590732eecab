package render

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/epmviz/backend/cmd/app/cli"
	"github.com/epmviz/backend/internal/constant"
	"github.com/epmviz/backend/internal/service"
)

type CommandDeps struct {
	fx.In

	SceneService *service.Scene
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "build the scene once from the configured dataset and write it to a file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "model",
				Usage: "model whose trajectories are rendered",
				Value: constant.DefaultModel,
			},
			&cli.StringFlag{
				Name:     "out",
				Aliases:  []string{"o"},
				Usage:    "output file, - for stdout",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "debug-addr",
				Usage: "serve profiling endpoints (/debug/fgprof, /debug/pprof) on this address while rendering",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: json or msgpack",
				Value: FormatJSON,
			},
		},
		Action: func(c *cli.Context) error {
			format, err := ParseFormat(c.String("format"))
			if err != nil {
				return err
			}

			if addr := c.String("debug-addr"); addr != "" {
				serveDebug(addr)
			}

			var deps CommandDeps
			if err := cliapp.Start(fx.Populate(&deps)); err != nil {
				return err
			}
			return run(c.Context, deps, c.String("model"), c.String("out"), format)
		},
	}
}
