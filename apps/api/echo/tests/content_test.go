package tests

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/maneno/core/blog"
	"github.com/trezcool/maneno/core/event"
	"github.com/trezcool/maneno/core/flashcard"
	"github.com/trezcool/maneno/core/quiz"
	"github.com/trezcool/maneno/core/user"
)

func createEditorToken(t *testing.T, uname string) string {
	t.Helper()
	editor := createUser(t, uname, uname+"@test.cd", "LeTests123", user.EditorRoles)
	return getToken(t, editor)
}

func Test_flashcard_createAndFilter(t *testing.T) {
	token := createEditorToken(t, "fceditor")

	body := marchallObj(t, flashcard.NewFlashcard{
		Front:    `What is the plural of "child"?`,
		Back:     "Children",
		Category: "fcgrammar",
	})
	req, rec := newAuthRequest(http.MethodPost, "/v1/flashcards", token, body)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created flashcard.Flashcard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "medium", created.Difficulty) // default
	assert.True(t, created.IsDue(time.Now().UTC()), "new cards are due immediately")

	// anonymous create is rejected
	req, rec = newRequest(http.MethodPost, "/v1/flashcards", body)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// public list, filtered
	req, rec = newRequest(http.MethodGet, "/v1/flashcards?category=fcgrammar")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var cards []flashcard.Flashcard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, created.ID, cards[0].ID)

	// due filter includes freshly created cards
	req, rec = newRequest(http.MethodGet, "/v1/flashcards?category=fcgrammar&due=true")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	assert.Len(t, cards, 1)

	// no match yields an empty list, not null
	req, rec = newRequest(http.MethodGet, "/v1/flashcards?category=nosuchcategory")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", string(bytesTrimmed(rec.Body.Bytes())))
}

func Test_quiz_createAndFilter(t *testing.T) {
	token := createEditorToken(t, "quizeditor")

	body := marchallObj(t, quiz.NewQuiz{
		Question:      `Choose the synonym of "happy".`,
		Type:          quiz.TypeMultipleChoice,
		Options:       []string{"Sad", "Joyful", "Angry", "Tired"},
		CorrectAnswer: "Joyful",
		Category:      "quizsynonyms",
		Points:        2,
	})
	req, rec := newAuthRequest(http.MethodPost, "/v1/quizzes", token, body)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created quiz.Quiz
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, []string{"Sad", "Joyful", "Angry", "Tired"}, []string(created.Options))
	assert.Equal(t, 2, created.Points)

	// fill-blank quizzes carry an empty options list, never null
	body = marchallObj(t, quiz.NewQuiz{
		Question:      `The capital of France is ___.`,
		Type:          quiz.TypeFillBlank,
		CorrectAnswer: "Paris",
		Category:      "quizsynonyms",
	})
	req, rec = newAuthRequest(http.MethodPost, "/v1/quizzes", token, body)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var fillBlank quiz.Quiz
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fillBlank))
	assert.NotNil(t, fillBlank.Options)
	assert.Len(t, fillBlank.Options, 0)
	assert.Equal(t, 1, fillBlank.Points) // default

	// filter by type
	req, rec = newRequest(http.MethodGet, "/v1/quizzes?category=quizsynonyms&type=fill_blank")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var quizzes []quiz.Quiz
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quizzes))
	require.Len(t, quizzes, 1)
	assert.Equal(t, fillBlank.ID, quizzes[0].ID)

	// unknown type is rejected
	req, rec = newAuthRequest(http.MethodPost, "/v1/quizzes", token,
		[]byte(`{"question":"q","type":"essay","correctAnswer":"a"}`))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// every type requires a correct answer, fill_blank included
	req, rec = newAuthRequest(http.MethodPost, "/v1/quizzes", token,
		[]byte(`{"question":"q","type":"fill_blank"}`))
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusBadRequest,
		wantData: []byte(`{"correctAnswer":"this field is required"}`),
	}, rec)
}

func Test_event_createAndFilter(t *testing.T) {
	token := createEditorToken(t, "eventeditor")

	past := time.Now().UTC().AddDate(0, 0, -7)
	future := time.Now().UTC().AddDate(0, 0, 7)

	post := func(title string, start time.Time) event.Event {
		body := marchallObj(t, event.NewEvent{
			Title:       title,
			Description: "An event for learners.",
			StartDate:   start,
			Type:        "meetuptest",
			Tags:        []string{"community"},
		})
		req, rec := newAuthRequest(http.MethodPost, "/v1/events", token, body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var evt event.Event
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &evt))
		return evt
	}

	pastEvt := post("Past Meetup", past)
	futureEvt := post("Future Meetup", future)

	assert.True(t, pastEvt.IsOnline, "isOnline defaults to true")

	// all events of this type, earliest first
	req, rec := newRequest(http.MethodGet, "/v1/events?type=meetuptest")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var events []event.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 2)
	assert.Equal(t, pastEvt.ID, events[0].ID)
	assert.Equal(t, futureEvt.ID, events[1].ID)

	// upcoming only
	req, rec = newRequest(http.MethodGet, "/v1/events?type=meetuptest&upcoming=true")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, futureEvt.ID, events[0].ID)

	// default type is webinar
	body := marchallObj(t, event.NewEvent{
		Title:       "Typeless",
		Description: "No type given.",
		StartDate:   future,
	})
	req, rec = newAuthRequest(http.MethodPost, "/v1/events", token, body)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var evt event.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &evt))
	assert.Equal(t, "webinar", evt.Type)
}

func Test_blog_createAndRead(t *testing.T) {
	token := createEditorToken(t, "blogeditor")

	body := marchallObj(t, blog.NewPost{
		Title:     "Listening Practice That Works",
		Slug:      "listening-practice",
		Content:   "Long form article body about listening practice...",
		Excerpt:   "Short teaser.",
		Category:  "bloglistening",
		Tags:      []string{"listening", "practice"},
		Published: true,
	})
	req, rec := newAuthRequest(http.MethodPost, "/v1/blogs", token, body)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created blog.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "bloglistening", created.Category)

	// duplicate slug is a validation error
	req, rec = newAuthRequest(http.MethodPost, "/v1/blogs", token, body)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	// list returns the summary projection: no content field
	req, rec = newRequest(http.MethodGet, "/v1/blogs?category=bloglistening")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	_, hasContent := listed[0]["content"]
	assert.False(t, hasContent, "list projection must omit content")

	// detail read carries the whole article
	req, rec = newRequest(http.MethodGet, "/v1/blogs/listening-practice")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var detail blog.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, created.ID, detail.ID)
	assert.NotEmpty(t, detail.Content)

	// unknown slug is a 404
	req, rec = newRequest(http.MethodGet, "/v1/blogs/no-such-post")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
