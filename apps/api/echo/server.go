package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/maneno/core"
	"github.com/trezcool/maneno/core/blog"
	"github.com/trezcool/maneno/core/event"
	"github.com/trezcool/maneno/core/flashcard"
	"github.com/trezcool/maneno/core/progress"
	"github.com/trezcool/maneno/core/quiz"
	"github.com/trezcool/maneno/core/user"
	"github.com/trezcool/maneno/core/word"
)

type (
	// Deps holds the services the API serves.
	Deps struct {
		Conf         *core.Config
		Logger       core.Logger
		UserSvc      *user.Service
		WordSvc      *word.Service
		FlashcardSvc *flashcard.Service
		QuizSvc      *quiz.Service
		EventSvc     *event.Service
		BlogSvc      *blog.Service
		ProgressSvc  *progress.Service
	}

	Server interface {
		http.Handler
		Start()
		Shutdown(context.Context) error
		Close() error
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
	}

	server struct {
		addr       string
		deps       *Deps
		app        *echo.Echo
		errs       chan error
		shutdownCh chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(addr string, deps *Deps) Server {
	s := &server{
		addr:       addr,
		deps:       deps,
		app:        echo.New(),
		errs:       make(chan error, 1),
		shutdownCh: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdownCh, os.Interrupt, syscall.SIGTERM)
	initAuth(deps.Conf)
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, func() { s.shutdownCh <- syscall.SIGTERM })
	// raw error messages would break the exact response bodies tests assert on
	s.app.Debug = conf.Debug && !conf.TestMode

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerWordAPI(v1, jwt, s.deps.WordSvc)
	registerFlashcardAPI(v1, jwt, s.deps.FlashcardSvc)
	registerQuizAPI(v1, jwt, s.deps.QuizSvc)
	registerEventAPI(v1, jwt, s.deps.EventSvc)
	registerBlogAPI(v1, jwt, s.deps.BlogSvc)
	registerProgressAPI(v1, s.deps.ProgressSvc)
	registerUserAPI(v1, jwt, s.deps.UserSvc)
}

func (s *server) Start() {
	if err := s.app.Start(s.addr); err != nil && err != http.ErrServerClosed {
		s.errs <- err
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) Errors() <-chan error {
	return s.errs
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdownCh
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Maneno API!")
}
