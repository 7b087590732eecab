package httpserver

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/helmet/v2"
	"github.com/rs/zerolog/log"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"

	"github.com/epmviz/backend/internal/app/appconfig"
	"github.com/epmviz/backend/internal/constant"
	"github.com/epmviz/backend/internal/pkg/apperr"
	"github.com/epmviz/backend/internal/pkg/bininfo"
	"github.com/epmviz/backend/internal/pkg/middlewares"
	"github.com/epmviz/backend/internal/pkg/observability"
)

var registerPromOnce sync.Once

// Create builds the fiber app. tp is nil when tracing is disabled.
func Create(conf *appconfig.Config, tp *tracesdk.TracerProvider) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "EPM Trajectory Scene Backend",
		ServerHeader: fmt.Sprintf("epmviz/%s", bininfo.Version),
		// a full scene with every frame can be large; give slow clients time to read it
		ReadTimeout:    time.Second * 20,
		WriteTimeout:   time.Second * 60,
		ReadBufferSize: 8192,
		// allow possibility for graceful shutdown, otherwise app#Shutdown() will block forever
		IdleTimeout:             conf.HTTPServerShutdownTimeout,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          conf.TrustedProxies,
		ErrorHandler:            ErrorHandler,
		JSONEncoder:             json.Marshal,
		JSONDecoder:             json.Unmarshal,
		Immutable:               true,
	})

	app.Use(favicon.New())
	app.Use(fibersentry.New(fibersentry.Config{
		Repanic: true,
		Timeout: time.Second * 5,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET, POST, OPTIONS",
		AllowHeaders:  "Content-Type, X-Requested-With, sentry-trace",
		ExposeHeaders: "Content-Type, " + constant.RequestIDHeader,
	}))
	middlewares.Logger(app)
	// the logger middleware injects RequestID into the context,
	// and we need an extra middleware to extract it and repopulate it into ctx.Locals
	app.Use(middlewares.RequestID())

	app.Use(func(c *fiber.Ctx) error {
		// Use custom error handler to return customized error responses
		err := c.Next()
		if e, ok := err.(*apperr.AppError); ok {
			return HandleCustomError(c, e)
		}
		return err
	})

	app.Use(helmet.New(helmet.Config{
		HSTSMaxAge:         31356000,
		HSTSPreloadEnabled: true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		PermissionPolicy:   "interest-cohort=()",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			buf := make([]byte, 4096)
			buf = buf[:runtime.Stack(buf, false)]
			log.Error().Msgf("panic: %v\n%s\n", e, buf)
		},
	}))
	// frames repeat most of the scene; they compress very well
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	registerPromOnce.Do(func() {
		fiberprom := fiberprometheus.New(observability.ServiceName)
		fiberprom.RegisterAt(app, "/metrics")
		app.Use(fiberprom.Middleware)
	})

	if tp != nil {
		app.Use(otelfiber.Middleware(otelfiber.WithTracerProvider(tp)))
	}

	if conf.DevMode {
		log.Info().Msg("Running in DEV mode")
		app.Use(pprof.New())
	} else {
		app.Use(middlewares.EnrichSentry())
	}

	return app
}
