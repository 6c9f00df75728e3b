package progress

import "time"

// Activity types affecting gamification counters. Unknown types are
// accepted: they credit points and are logged but bump no counter.
const (
	ActivityWordLearned = "word_learned"
	ActivityBlogRead    = "blog_read"
	ActivityQuizTaken   = "quiz_taken"
	ActivityQuizCorrect = "quiz_correct"
)

const (
	LevelBeginner = "beginner"

	defaultDailyGoal = 2
)

// counterColumns maps an activity type to the Progress counter it bumps.
var counterColumns = map[string]string{
	ActivityWordLearned: "total_words",
	ActivityBlogRead:    "total_blogs_read",
	ActivityQuizTaken:   "total_quizzes_taken",
	ActivityQuizCorrect: "total_quizzes_correct",
}

// CounterColumn returns the counter column bumped by the given activity
// type; ok is false for unrecognized types (no-op on counters).
func CounterColumn(activityType string) (string, bool) {
	col, ok := counterColumns[activityType]
	return col, ok
}

// Progress is a per-learner bag of monotonic gamification counters.
// It is created lazily on first interaction and only ever mutated
// through increments.
type Progress struct {
	ID                   string    `json:"id" db:"id"`
	UserID               string    `json:"userId" db:"user_id"`
	Streak               int       `json:"streak" db:"streak"`
	TotalWords           int       `json:"totalWords" db:"total_words"`
	TotalBlogsRead       int       `json:"totalBlogsRead" db:"total_blogs_read"`
	TotalQuizzesTaken    int       `json:"totalQuizzesTaken" db:"total_quizzes_taken"`
	TotalQuizzesCorrect  int       `json:"totalQuizzesCorrect" db:"total_quizzes_correct"`
	Level                string    `json:"level" db:"level"`
	Points               int       `json:"points" db:"points"`
	DailyGoal            int       `json:"dailyGoal" db:"daily_goal"`
	NotificationsEnabled bool      `json:"notificationsEnabled" db:"notifications_enabled"`
	LastActive           time.Time `json:"lastActive" db:"last_active"` // UTC
	CreatedAt            time.Time `json:"createdAt" db:"created_at"`   // UTC
	UpdatedAt            time.Time `json:"updatedAt" db:"updated_at"`   // UTC
}

// NewProgress returns a fresh Progress record for the given learner id:
// all counters zeroed, beginner level, default daily goal.
func NewProgress(userID string) Progress {
	return Progress{
		UserID:               userID,
		Level:                LevelBeginner,
		DailyGoal:            defaultDailyGoal,
		NotificationsEnabled: true,
	}
}

// Activity is an append-only log entry; it is never updated or deleted.
type Activity struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Type      string    `json:"type" db:"type"`
	Content   string    `json:"content" db:"content"` // free-form JSON payload
	Points    int       `json:"points" db:"points"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // UTC
}
