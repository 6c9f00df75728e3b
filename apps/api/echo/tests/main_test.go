package tests

import (
	"log"
	"os"
	"testing"

	echoapi "github.com/trezcool/maneno/apps/api/echo"
	"github.com/trezcool/maneno/core"
	"github.com/trezcool/maneno/core/blog"
	"github.com/trezcool/maneno/core/event"
	"github.com/trezcool/maneno/core/flashcard"
	"github.com/trezcool/maneno/core/progress"
	"github.com/trezcool/maneno/core/quiz"
	"github.com/trezcool/maneno/core/user"
	"github.com/trezcool/maneno/core/word"
	emailsvc "github.com/trezcool/maneno/services/email"
	logsvc "github.com/trezcool/maneno/services/logger"
	dummydb "github.com/trezcool/maneno/storage/database/dummy"
)

var (
	db  *dummydb.DB
	app echoapi.Server

	conf    *core.Config
	usrRepo user.Repository
	usrSvc  *user.Service

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
)

func TestMain(m *testing.M) {
	os.Setenv("ENV", "TEST")
	conf = core.NewConfig()

	// set up DB & repos
	var err error
	if db, err = dummydb.Open(); err != nil {
		log.Fatalf("dummydb.Open(): %v", err)
	}
	usrRepo = dummydb.NewUserRepository(db)

	// set up services
	logger := logsvc.NewRollbarLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags), conf)
	logger.Enable(false)
	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	usrSvc = user.NewService(usrRepo, mailSvc, conf)

	// set up server
	app = echoapi.NewServer(
		"", /* addr */
		&echoapi.Deps{
			Conf:         conf,
			Logger:       logger,
			UserSvc:      usrSvc,
			WordSvc:      word.NewService(dummydb.NewWordRepository(db)),
			FlashcardSvc: flashcard.NewService(dummydb.NewFlashcardRepository(db)),
			QuizSvc:      quiz.NewService(dummydb.NewQuizRepository(db)),
			EventSvc:     event.NewService(dummydb.NewEventRepository(db)),
			BlogSvc:      blog.NewService(dummydb.NewBlogRepository(db)),
			ProgressSvc:  progress.NewService(dummydb.NewProgressRepository(db)),
		},
	)

	os.Exit(m.Run())
}
