package dummydb

import (
	"sync"

	"github.com/trezcool/maneno/core/blog"
	"github.com/trezcool/maneno/core/event"
	"github.com/trezcool/maneno/core/flashcard"
	"github.com/trezcool/maneno/core/progress"
	"github.com/trezcool/maneno/core/quiz"
	"github.com/trezcool/maneno/core/user"
	"github.com/trezcool/maneno/core/word"
)

type (
	DB struct {
		user      *userTable
		word      *wordTable
		flashcard *flashcardTable
		quiz      *quizTable
		event     *eventTable
		blog      *blogTable
		progress  *progressTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
	}

	wordTable struct {
		sync.RWMutex
		table map[string]*word.DailyWord // keyed by date (2006-01-02)
	}

	flashcardTable struct {
		sync.RWMutex
		table map[string]*flashcard.Flashcard
	}

	quizTable struct {
		sync.RWMutex
		table map[string]*quiz.Quiz
	}

	eventTable struct {
		sync.RWMutex
		table map[string]*event.Event
	}

	blogTable struct {
		sync.RWMutex
		table map[string]*blog.Post
	}

	progressTable struct {
		sync.RWMutex
		table      map[string]*progress.Progress // keyed by user ID
		activities []progress.Activity
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:      &userTable{table: make(map[string]*user.User)},
		word:      &wordTable{table: make(map[string]*word.DailyWord)},
		flashcard: &flashcardTable{table: make(map[string]*flashcard.Flashcard)},
		quiz:      &quizTable{table: make(map[string]*quiz.Quiz)},
		event:     &eventTable{table: make(map[string]*event.Event)},
		blog:      &blogTable{table: make(map[string]*blog.Post)},
		progress:  &progressTable{table: make(map[string]*progress.Progress)},
	}
	return db, nil
}
