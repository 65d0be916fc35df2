// Package web serves a read-only HTML rendition of the portfolio.
//
// The server holds no session. Each request carries its state in the query
// string and every link on the page points at the state one reducer step
// away, so clicking through the site walks the same transitions as the
// terminal UI.
package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"portfolio/internal/content"
	"portfolio/internal/state"
)

//go:embed templates/*.html
var templateFS embed.FS

// Option configures the router.
type Option func(*options)

type options struct {
	logger *slog.Logger
	tracer oteltrace.Tracer
}

// WithLogger logs one record per request.
func WithLogger(l *slog.Logger) Option { return func(o *options) { o.logger = l } }

// WithTracer records one span per request.
func WithTracer(t oteltrace.Tracer) Option { return func(o *options) { o.tracer = t } }

// NewRouter builds the gin engine serving /, /state and /healthz.
func NewRouter(opts ...Option) (*gin.Engine, error) {
	o := options{
		logger: slog.Default(),
		tracer: noop.NewTracerProvider().Tracer("portfolio/web"),
	}
	for _, fn := range opts {
		fn(&o)
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(o.logger), requestSpan(o.tracer))
	r.SetHTMLTemplate(tmpl)

	r.GET("/", handlePage)
	r.GET("/state", handleState)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r, nil
}

// stateJSON is the /state response body.
type stateJSON struct {
	Screen   string `json:"screen"`
	Theme    string `json:"theme"`
	Expanded *int   `json:"expanded"`
}

func handleState(c *gin.Context) {
	s, ok := decode(c)
	if !ok {
		return
	}
	out := stateJSON{Screen: s.Screen.String(), Theme: s.Theme.String()}
	if id, ok := s.Expanded.ID(); ok {
		out.Expanded = &id
	}
	c.JSON(http.StatusOK, out)
}

func handlePage(c *gin.Context) {
	s, ok := decode(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "page.html", newPage(s))
}

// decode parses the request state or writes a 400.
func decode(c *gin.Context) (state.AppState, bool) {
	s, err := DecodeState(c.Request.URL.Query())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return state.AppState{}, false
	}
	return s, true
}

type tab struct {
	Label  string
	Href   string
	Active bool
}

type card struct {
	state.Card
	Href string
}

// page is the template data for one screen.
type page struct {
	State      state.AppState
	Dark       bool
	Profile    content.ProfileInfo
	Tabs       []tab
	ThemeHref  string
	ThemeLabel string

	// OnHome and OnExperience select the main section; Resume otherwise.
	OnHome       bool
	OnExperience bool

	Actions   []content.Action
	Skills    []string
	Cards     []card
	Education []content.Entry
	Awards    []content.Entry
}

func newPage(s state.AppState) page {
	p := page{
		State:        s,
		Dark:         s.Theme.Dark(),
		OnHome:       s.Screen == state.ScreenHome,
		OnExperience: s.Screen == state.ScreenExperience,
		Profile:      content.Profile(),
		ThemeHref:    Link(s, state.ToggleTheme{}),
		ThemeLabel:   "☾ Dark",
	}
	if p.Dark {
		p.ThemeLabel = "☀ Light"
	}
	for _, sc := range state.Screens() {
		p.Tabs = append(p.Tabs, tab{
			Label:  sc.String(),
			Href:   Link(s, state.SelectScreen{Target: sc}),
			Active: sc == s.Screen,
		})
	}

	switch s.Screen {
	case state.ScreenHome:
		p.Actions = content.Actions()
		p.Skills = content.Skills()
	case state.ScreenExperience:
		for _, c := range state.Cards(s, content.Experiences()) {
			p.Cards = append(p.Cards, card{
				Card: c,
				Href: Link(s, state.ToggleExpansion{ID: c.Experience.ID}),
			})
		}
	case state.ScreenResume:
		p.Education = content.Education()
		p.Awards = content.Awards()
	}
	return p
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.InfoContext(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func requestSpan(tracer oteltrace.Tracer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), "portfolio.http "+c.Request.URL.Path)
		defer span.End()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", c.FullPath()),
			attribute.Int("http.status_code", c.Writer.Status()),
		)
	}
}
