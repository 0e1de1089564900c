package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/mwendwa/elimika/core"
	"github.com/mwendwa/elimika/core/chat"
	"github.com/mwendwa/elimika/core/cluster"
	"github.com/mwendwa/elimika/core/mentor"
	"github.com/mwendwa/elimika/core/scholarship"
	"github.com/mwendwa/elimika/core/university"
	"github.com/mwendwa/elimika/core/user"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool

		UserSvc        user.Service
		ClusterSvc     cluster.Service
		ChatSvc        chat.Service
		MentorDir      *mentor.Directory
		ScholarshipCat *scholarship.Catalog
		UniversityCat  *university.Catalog
		Logger         core.Logger
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
		ShutdownCh() <-chan struct{}
	}

	server struct {
		opts       *Options
		app        *echo.Echo
		shutdownCh chan struct{}
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts:       opts,
		app:        echo.New(),
		shutdownCh: make(chan struct{}),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = core.Conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerUserAPI(v1, jwt, s.opts.UserSvc)
	registerClusterAPI(v1, jwt, s.opts.ClusterSvc, s.opts.UserSvc)
	registerChatAPI(v1, jwt, s.opts.ChatSvc, s.opts.UserSvc)
	registerMentorAPI(v1, s.opts.MentorDir)
	registerScholarshipAPI(v1, s.opts.ScholarshipCat)
	registerUniversityAPI(v1, s.opts.UniversityCat)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

// ShutdownCh is closed when a handler surfaces an unrecoverable error;
// the main goroutine listens on it to trigger a graceful stop.
func (s *server) ShutdownCh() <-chan struct{} {
	return s.shutdownCh
}

func (s *server) signalShutdown() {
	close(s.shutdownCh)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Karibu Elimika API!")
}
