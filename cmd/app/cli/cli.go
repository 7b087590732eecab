package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/epmviz/backend/internal/app"
	"github.com/epmviz/backend/internal/app/appcontext"
)

func Start(module fx.Option) error {
	return app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}
