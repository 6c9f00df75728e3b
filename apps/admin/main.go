package main

import (
	"log"
	"os"

	"github.com/trezcool/maneno/core"
	"github.com/trezcool/maneno/core/blog"
	"github.com/trezcool/maneno/core/event"
	"github.com/trezcool/maneno/core/flashcard"
	"github.com/trezcool/maneno/core/quiz"
	"github.com/trezcool/maneno/core/word"
	"github.com/trezcool/maneno/storage/database"
	sqlxrepos "github.com/trezcool/maneno/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up DB
	db, err := database.Open(conf)
	errAndDie(err)
	defer db.Close()
	errAndDie(database.Ping(db))

	// start CLI
	cli := commandLine{
		db:           db.DB,
		usrRepo:      sqlxrepos.NewUserRepository(db),
		wordSvc:      word.NewService(sqlxrepos.NewWordRepository(db)),
		flashcardSvc: flashcard.NewService(sqlxrepos.NewFlashcardRepository(db)),
		quizSvc:      quiz.NewService(sqlxrepos.NewQuizRepository(db)),
		eventSvc:     event.NewService(sqlxrepos.NewEventRepository(db)),
		blogSvc:      blog.NewService(sqlxrepos.NewBlogRepository(db)),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
