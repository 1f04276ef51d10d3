package api

import (
	"embed"
	"io/fs"
	"net/http"

	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"

	"github.com/fyyur/fyyur-backend/api/middleware"
	"github.com/fyyur/fyyur-backend/pubapi"
	v1 "github.com/fyyur/fyyur-backend/pubapi/v1"
	"github.com/fyyur/fyyur-backend/usecases"
)

//go:embed static
var staticFS embed.FS

type routeUsecases struct {
	venues   VenueUsecase
	artists  ArtistUsecase
	shows    ShowUsecase
	liveness LivenessUsecase
}

func newRouteUsecases(uc usecases.Usecases) routeUsecases {
	venueUsecase := uc.NewVenueUsecase()
	artistUsecase := uc.NewArtistUsecase()
	showUsecase := uc.NewShowUsecase()
	livenessUsecase := uc.NewLivenessUsecase()

	return routeUsecases{
		venues:   &venueUsecase,
		artists:  &artistUsecase,
		shows:    &showUsecase,
		liveness: &livenessUsecase,
	}
}

func addRoutes(r *gin.Engine, conf Configuration, uc routeUsecases) {
	maxFormSize := conf.MaxFormSize
	if maxFormSize <= 0 {
		maxFormSize = DEFAULT_MAX_FORM_SIZE
	}
	formLimit := limits.RequestSizeLimiter(maxFormSize)

	if conf.WriteRateLimit > 0 {
		r.Use(middleware.NewWriteRateLimiter(conf.WriteRateLimit, max(conf.WriteRateBurst, 1)).Handler())
	}

	r.GET("/liveness", handleLivenessProbe(uc.liveness))

	static, _ := fs.Sub(staticFS, "static")
	r.StaticFS("/static", http.FS(static))

	r.GET("/", handleHome)

	r.GET("/venues", handleListVenues(uc.venues))
	r.POST("/venues/search", formLimit, handleSearchVenues(uc.venues))
	r.GET("/venues/create", handleGetCreateVenue)
	r.POST("/venues/create", formLimit, handlePostCreateVenue(uc.venues))
	r.GET("/venues/:venue_id", handleGetVenue(uc.venues))
	r.DELETE("/venues/:venue_id", handleDeleteVenue(uc.venues))
	r.GET("/venues/:venue_id/edit", handleGetEditVenue(uc.venues))
	r.POST("/venues/:venue_id/edit", formLimit, handlePostEditVenue(uc.venues))

	r.GET("/artists", handleListArtists(uc.artists))
	r.POST("/artists/search", formLimit, handleSearchArtists(uc.artists))
	r.GET("/artists/create", handleGetCreateArtist)
	r.POST("/artists/create", formLimit, handlePostCreateArtist(uc.artists))
	r.GET("/artists/:artist_id", handleGetArtist(uc.artists))
	r.DELETE("/artists/:artist_id", handleDeleteArtist(uc.artists))
	r.GET("/artists/:artist_id/edit", handleGetEditArtist(uc.artists))
	r.POST("/artists/:artist_id/edit", formLimit, handlePostEditArtist(uc.artists))

	r.GET("/shows", handleListShows(uc.shows))
	r.GET("/shows/create", handleGetCreateShow(uc.shows))
	r.POST("/shows/create", formLimit, handlePostCreateShow(uc.shows))

	apiV1 := r.Group("/api/v1")
	if conf.DefaultTimeout > 0 {
		apiV1.Use(pubapi.TimeoutMiddleware(conf.DefaultTimeout))
	}
	v1.AddReadRoutes(apiV1, uc.venues, uc.artists, uc.shows)

	r.NoRoute(renderNotFound)
}
