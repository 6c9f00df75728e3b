package main

import (
	"context"
	"time"

	"github.com/trezcool/maneno/core/blog"
	"github.com/trezcool/maneno/core/event"
	"github.com/trezcool/maneno/core/flashcard"
	"github.com/trezcool/maneno/core/quiz"
	"github.com/trezcool/maneno/core/word"
)

const seedDateLayout = "2006-01-02"

// seed loads sample content for local development.
func (cli *commandLine) seed() error {
	ctx := context.Background()
	now := time.Now().UTC()

	words := []word.NewDailyWord{
		{
			Date:       now.Format(seedDateLayout),
			Word1:      "Eloquent",
			Meaning1:   "Fluent or persuasive in speaking or writing",
			Example1:   "She gave an eloquent speech at the conference.",
			Word2:      "Meticulous",
			Meaning2:   "Showing great attention to detail; very careful and precise",
			Example2:   "He is meticulous in his research and never misses any details.",
			Difficulty: "medium",
			Category:   "vocabulary",
		},
		{
			Date:       now.AddDate(0, 0, -1).Format(seedDateLayout),
			Word1:      "Resilient",
			Meaning1:   "Able to withstand or recover quickly from difficult conditions",
			Example1:   "The community showed they were resilient after the natural disaster.",
			Word2:      "Innovative",
			Meaning2:   "Featuring new methods; advanced and original",
			Example2:   "The company is known for its innovative approach to technology.",
			Difficulty: "easy",
			Category:   "adjectives",
		},
		{
			Date:       now.AddDate(0, 0, -2).Format(seedDateLayout),
			Word1:      "Ubiquitous",
			Meaning1:   "Present, appearing, or found everywhere",
			Example1:   "Smartphones have become ubiquitous in modern society.",
			Word2:      "Ephemeral",
			Meaning2:   "Lasting for a very short time",
			Example2:   "The beauty of cherry blossoms is ephemeral, lasting only a few weeks.",
			Difficulty: "hard",
			Category:   "vocabulary",
		},
	}
	for _, nw := range words {
		if _, err := cli.wordSvc.Upsert(ctx, nw); err != nil {
			return err
		}
	}

	cards := []flashcard.NewFlashcard{
		{Front: `What is the past tense of "go"?`, Back: "Went", Category: "grammar", Difficulty: "easy"},
		{Front: `Define "serendipity"`, Back: "The occurrence of events by chance in a happy way", Category: "vocabulary", Difficulty: "medium"},
		{Front: `Complete: "___ mind the gap"`, Back: "Please", Category: "phrases", Difficulty: "easy"},
		{Front: `What does "procrastinate" mean?`, Back: "To delay or postpone action; to put off doing something", Category: "vocabulary", Difficulty: "medium"},
		{Front: `Choose correct: "He is ___ than his brother." (taller/more tall)`, Back: "Taller", Category: "grammar", Difficulty: "easy"},
	}
	for _, nf := range cards {
		if _, err := cli.flashcardSvc.Create(ctx, nf); err != nil {
			return err
		}
	}

	quizzes := []quiz.NewQuiz{
		{
			Question:      "Which sentence uses the correct grammar?",
			Type:          quiz.TypeMultipleChoice,
			Options:       []string{"He don't like apples.", "He doesn't like apples.", "He doesn't likes apples.", "He don't likes apples."},
			CorrectAnswer: "He doesn't like apples.",
			Explanation:   `The correct form is "doesn't" for third person singular negative.`,
			Difficulty:    "easy",
			Category:      "grammar",
			Points:        1,
		},
		{
			Question:      `What does the idiom "break a leg" mean?`,
			Type:          quiz.TypeMultipleChoice,
			Options:       []string{"To literally break a leg", "Good luck", "To sit down", "To run fast"},
			CorrectAnswer: "Good luck",
			Explanation:   `"Break a leg" is an idiom used to wish someone good luck, especially before a performance.`,
			Difficulty:    "medium",
			Category:      "idioms",
			Points:        2,
		},
		{
			Question:      `The opposite of "optimistic" is ___.`,
			Type:          quiz.TypeFillBlank,
			CorrectAnswer: "pessimistic",
			Explanation:   "Pessimistic means having a tendency to see the worst aspect of things or believe that the worst will happen.",
			Difficulty:    "medium",
			Category:      "vocabulary",
			Points:        1,
		},
	}
	for _, nq := range quizzes {
		if _, err := cli.quizSvc.Create(ctx, nq); err != nil {
			return err
		}
	}

	nextWeek := now.AddDate(0, 0, 7)
	inTwoWeeks := now.AddDate(0, 0, 14)
	workshopEnd := nextWeek.Add(2 * time.Hour)
	challengeEnd := inTwoWeeks.AddDate(0, 0, 30)
	maxWorkshop, maxChallenge, maxWebinar := 50, 100, 75

	events := []event.NewEvent{
		{
			Title:           "English Pronunciation Workshop",
			Description:     "Join our interactive workshop to improve your English pronunciation and reduce your accent.",
			StartDate:       nextWeek,
			EndDate:         &workshopEnd,
			Type:            "workshop",
			MaxParticipants: &maxWorkshop,
			Tags:            []string{"pronunciation", "workshop", "online"},
		},
		{
			Title:           "30-Day English Challenge",
			Description:     "Challenge yourself to speak English every day for 30 days. Win prizes and improve your fluency!",
			StartDate:       inTwoWeeks,
			EndDate:         &challengeEnd,
			Type:            "challenge",
			MaxParticipants: &maxChallenge,
			Tags:            []string{"challenge", "fluency", "30-days"},
		},
		{
			Title:           "Business English Webinar",
			Description:     "Learn essential business English phrases and etiquette for professional success.",
			StartDate:       nextWeek.AddDate(0, 0, 3),
			Type:            "webinar",
			MaxParticipants: &maxWebinar,
			Tags:            []string{"business", "professional", "webinar"},
		},
	}
	for _, ne := range events {
		if _, err := cli.eventSvc.Create(ctx, ne); err != nil {
			return err
		}
	}

	readTime1, readTime2, readTime3 := 8, 12, 10
	posts := []blog.NewPost{
		{
			Title:     "10 Common English Mistakes and How to Avoid Them",
			Slug:      "common-english-mistakes",
			Content:   "Learning English is a journey, and making mistakes is part of the process. In this article, we'll explore 10 common mistakes English learners make and provide practical tips to avoid them...",
			Excerpt:   "Discover the most common English learning mistakes and learn how to avoid them for faster progress.",
			Category:  "grammar",
			Tags:      []string{"grammar", "mistakes", "learning-tips"},
			Published: true,
			Featured:  true,
			ReadTime:  &readTime1,
		},
		{
			Title:     "How to Build Your English Vocabulary Effectively",
			Slug:      "build-vocabulary-effectively",
			Content:   "Building a strong vocabulary is essential for fluency in English. This comprehensive guide will show you the most effective strategies to learn and remember new words...",
			Excerpt:   "Learn proven strategies to expand your English vocabulary quickly and effectively.",
			Category:  "vocabulary",
			Tags:      []string{"vocabulary", "learning-strategies", "tips"},
			Published: true,
			ReadTime:  &readTime2,
		},
		{
			Title:     "The Power of Phrasal Verbs in Everyday English",
			Slug:      "power-phrasal-verbs",
			Content:   "Phrasal verbs are an essential part of natural English conversation. Mastering them will make your speech sound more native and fluent...",
			Excerpt:   "Master phrasal verbs to sound more natural and fluent in English conversations.",
			Category:  "vocabulary",
			Tags:      []string{"phrasal-verbs", "conversation", "fluency"},
			Published: true,
			ReadTime:  &readTime3,
		},
	}
	for _, np := range posts {
		if _, err := cli.blogSvc.Create(ctx, np); err != nil {
			return err
		}
	}

	logger.Println("Database seeded successfully!")
	return nil
}
