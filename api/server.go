package api

import (
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/fyyur/fyyur-backend/usecases"
)

// grace period on top of the handler timeout, so handlers answer before the connection is cut
const serverTimeoutMargin = 5 * time.Second

type serverOptions struct {
	host string
}

type Option func(*serverOptions)

// WithLocalTest binds the server to the loopback interface only.
func WithLocalTest(localTest bool) Option {
	return func(o *serverOptions) {
		if localTest {
			o.host = "localhost"
		}
	}
}

// NewServer mounts the booking directory routes on the router and wraps it in an h2c-capable server.
func NewServer(router *gin.Engine, conf Configuration, uc usecases.Usecases, opts ...Option) *http.Server {
	o := serverOptions{host: "0.0.0.0"}
	for _, opt := range opts {
		opt(&o)
	}

	addRoutes(router, conf, newRouteUsecases(uc))

	timeout := conf.DefaultTimeout + serverTimeoutMargin

	return &http.Server{
		Addr:              net.JoinHostPort(o.host, conf.Port),
		Handler:           h2c.NewHandler(router, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
		IdleTimeout:       timeout,
	}
}
