package server

import (
	"go.uber.org/fx"

	"github.com/epmviz/backend/internal/server/httpserver"
	"github.com/epmviz/backend/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
