package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/maneno/core/user"
	"github.com/trezcool/maneno/core/word"
)

func Test_word_upsert_permissions(t *testing.T) {
	learner := createUser(t, "wordlearner", "wordlearner@test.cd", "LeTests123", nil)
	editor := createUser(t, "wordeditor", "wordeditor@test.cd", "LeTests123", user.EditorRoles)

	body := marchallObj(t, word.NewDailyWord{
		Date:     "2026-01-01",
		Word1:    "Serene",
		Meaning1: "Calm, peaceful and untroubled",
		Word2:    "Placid",
		Meaning2: "Not easily upset or excited",
	})

	tests := []httpTest{
		{name: "anonymous is rejected", wantCode: http.StatusUnauthorized},
		{name: "non-staff is rejected", token: getToken(t, learner), wantCode: http.StatusForbidden},
		{name: "editor can author", token: getToken(t, editor), wantCode: http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/daily-words", tt.token, body)
			app.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func Test_word_getByDate(t *testing.T) {
	editor := createUser(t, "wordeditor2", "wordeditor2@test.cd", "LeTests123", user.EditorRoles)
	token := getToken(t, editor)

	// no pair stored for the date: 200 with a null body
	req, rec := newRequest(http.MethodGet, "/v1/daily-words?date=2026-02-01")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", string(bytesTrimmed(rec.Body.Bytes())))

	body := marchallObj(t, word.NewDailyWord{
		Date:     "2026-02-01",
		Word1:    "Candid",
		Meaning1: "Truthful and straightforward",
		Word2:    "Earnest",
		Meaning2: "Showing sincere and intense conviction",
	})
	req, rec = newAuthRequest(http.MethodPost, "/v1/daily-words", token, body)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created word.DailyWord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "medium", created.Difficulty) // default

	req, rec = newRequest(http.MethodGet, "/v1/daily-words?date=2026-02-01")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched word.DailyWord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Candid", fetched.Word1)

	// without a date the endpoint lists recent pairs as summaries
	req, rec = newRequest(http.MethodGet, "/v1/daily-words")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var recent []word.DailyWord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recent))
	require.NotEmpty(t, recent)
	assert.Empty(t, recent[0].Meaning1, "meanings are not part of the list payload")

	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.NotContains(t, raw[0], "meaning1")
	assert.NotContains(t, raw[0], "meaning2")
}

func Test_word_upsert_updatesInPlace(t *testing.T) {
	editor := createUser(t, "wordeditor3", "wordeditor3@test.cd", "LeTests123", user.EditorRoles)
	token := getToken(t, editor)

	post := func(w1 string) word.DailyWord {
		body := marchallObj(t, word.NewDailyWord{
			Date:     "2026-03-01",
			Word1:    w1,
			Meaning1: "meaning one",
			Word2:    "Second",
			Meaning2: "meaning two",
		})
		req, rec := newAuthRequest(http.MethodPost, "/v1/daily-words", token, body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var dw word.DailyWord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dw))
		return dw
	}

	first := post("Initial")
	second := post("Revised")

	assert.Equal(t, first.ID, second.ID, "same date must update the pair in place")
	assert.Equal(t, "Revised", second.Word1)

	// the date still resolves to a single pair
	req, rec := newRequest(http.MethodGet, "/v1/daily-words?date=2026-03-01")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched word.DailyWord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, "Revised", fetched.Word1)
}

func Test_word_validation(t *testing.T) {
	editor := createUser(t, "wordeditor4", "wordeditor4@test.cd", "LeTests123", user.EditorRoles)
	token := getToken(t, editor)

	tests := []httpTest{
		{
			name:     "invalid date format",
			body:     []byte(`{"date":"01-01-2026","word1":"a","meaning1":"b","word2":"c","meaning2":"d"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing words",
			body:     []byte(`{"date":"2026-04-01"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad difficulty",
			body:     []byte(`{"date":"2026-04-01","word1":"a","meaning1":"b","word2":"c","meaning2":"d","difficulty":"extreme"}`),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/daily-words", token, tt.body)
			app.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}

	// a malformed query date is rejected as well
	req, rec := newRequest(http.MethodGet, "/v1/daily-words?date=notadate")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
