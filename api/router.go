package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/fyyur/fyyur-backend/api/middleware"
	"github.com/fyyur/fyyur-backend/infra"
	"github.com/fyyur/fyyur-backend/pubapi"
	"github.com/fyyur/fyyur-backend/utils"
)

func corsOption(ctx context.Context, conf Configuration) cors.Config {
	logger := utils.LoggerFromContext(ctx)
	allowedOrigins := []string{}
	for _, s := range conf.AllowedOrigins {
		parsedUrl, err := url.Parse(s)
		switch {
		case err != nil:
			logger.Error("Failed to parse an allowed origin for CORS. Requests made from the browser from this url will be rejected.",
				"url", s)
		case !slices.Contains([]string{"http", "https"}, parsedUrl.Scheme):
			logger.Error(
				fmt.Sprintf("The url %s does not contain a scheme (http or https), so it cannot be used for CORS.", s),
				"url", s)
		default:
			u := url.URL{
				Scheme: parsedUrl.Scheme,
				Host:   parsedUrl.Host,
			}
			allowedOrigins = append(allowedOrigins, u.String())
		}
	}

	if conf.Env == "development" || len(allowedOrigins) == 0 {
		allowedOrigins = append(allowedOrigins,
			"http://localhost:"+conf.Port, "http://127.0.0.1:"+conf.Port)
	}

	return cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{
			http.MethodOptions, http.MethodHead, http.MethodGet,
			http.MethodPost, http.MethodDelete,
		},
		AllowHeaders:     []string{"Content-Type", middleware.HeaderRequestId, "baggage", "sentry-trace"},
		ExposeHeaders:    []string{middleware.HeaderRequestId},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}

// recoverWithErrorPage renders the 500 page after a panic. The panic has already been
// reported by the sentry middleware.
func recoverWithErrorPage(c *gin.Context, recovered any) {
	ctx := c.Request.Context()
	utils.LoggerFromContext(ctx).ErrorContext(ctx, fmt.Sprintf("%+v", errors.Newf("panic: %v", recovered)))
	renderServerError(c)
}

func InitRouterMiddlewares(
	ctx context.Context,
	conf Configuration,
	telemetryRessources infra.TelemetryRessources,
) *gin.Engine {
	if conf.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	pubapi.InitValidator()

	logger := utils.LoggerFromContext(ctx)

	r := gin.New()
	r.HTMLRender = mustHTMLRenderer()

	r.Use(gin.CustomRecovery(recoverWithErrorPage))
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	r.Use(middleware.NewRequestId())
	r.Use(cors.New(corsOption(ctx, conf)))
	r.Use(middleware.NewLogging(logger,
		middleware.WithRequestLoggingLevel(conf.RequestLoggingLevel),
		middleware.WithIgnorePrefix("/static", "/liveness"),
	))
	r.Use(utils.StoreLoggerInContextMiddleware(logger))
	r.Use(middleware.NewMetrics())
	r.Use(otelgin.Middleware(
		conf.AppName,
		otelgin.WithTracerProvider(telemetryRessources.TracerProvider),
		otelgin.WithPropagators(telemetryRessources.TextMapPropagator),
	))
	r.Use(flashMiddleware(newFlashStore(conf.SessionSecret)))

	return r
}
