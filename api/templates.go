package api

import (
	"embed"
	"html/template"
	"io/fs"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"github.com/fyyur/fyyur-backend/models"
)

//go:embed templates
var templatesFS embed.FS

const (
	pageHome          = "pages/home"
	pageVenues        = "pages/venues"
	pageSearchVenues  = "pages/search_venues"
	pageShowVenue     = "pages/show_venue"
	pageNewVenue      = "pages/new_venue"
	pageEditVenue     = "pages/edit_venue"
	pageArtists       = "pages/artists"
	pageSearchArtists = "pages/search_artists"
	pageShowArtist    = "pages/show_artist"
	pageNewArtist     = "pages/new_artist"
	pageEditArtist    = "pages/edit_artist"
	pageShows         = "pages/shows"
	pageNewShow       = "pages/new_show"
	pageNotFound      = "errors/404"
	pageServerError   = "errors/500"
)

const (
	datetimeFull   = "Monday January, 2, 2006 at 3:04PM"
	datetimeMedium = "Mon 01, 02, 2006 3:04PM"
)

// formatDatetime renders a show start time. The format is "full" or "medium", the default.
func formatDatetime(t time.Time, format ...string) string {
	if len(format) > 0 && format[0] == "full" {
		return t.Format(datetimeFull)
	}
	return t.Format(datetimeMedium)
}

var templateFuncs = template.FuncMap{
	"datetime": formatDatetime,
	"genres":   func() []string { return models.GENRES },
	"states":   func() []string { return models.STATES },
	"contains": func(values []string, value string) bool { return slices.Contains(values, value) },
	"fieldError": func(errs models.FieldValidationError, field string) string {
		return errs[field]
	},
}

// page is the data every template is executed with.
type page struct {
	Title   string
	Flashes []Flash
	Data    any
}

// htmlRenderer holds one template set per page, each made of the shared layout, the shared
// partials and the page itself.
type htmlRenderer struct {
	templates map[string]*template.Template
}

func newHTMLRenderer() (*htmlRenderer, error) {
	pages, err := fs.Glob(templatesFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	errorPages, err := fs.Glob(templatesFS, "templates/errors/*.html")
	if err != nil {
		return nil, err
	}

	r := &htmlRenderer{templates: make(map[string]*template.Template)}
	for _, p := range append(pages, errorPages...) {
		name := strings.TrimSuffix(strings.TrimPrefix(p, "templates/"), ".html")
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/partials/*.html",
			p,
		)
		if err != nil {
			return nil, err
		}
		r.templates[name] = tmpl
	}
	return r, nil
}

func mustHTMLRenderer() *htmlRenderer {
	r, err := newHTMLRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *htmlRenderer) Instance(name string, data any) render.Render {
	tmpl, ok := r.templates[name]
	if !ok {
		tmpl = r.templates[pageServerError]
	}
	return render.HTML{Template: tmpl, Name: "layout", Data: data}
}

func renderPage(c *gin.Context, status int, name, title string, data any) {
	c.HTML(status, name, page{
		Title:   title,
		Flashes: popFlashes(c),
		Data:    data,
	})
}
