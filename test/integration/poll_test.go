package integration

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (app *TestApp) getBody(t *testing.T, path string) (int, string) {
	t.Helper()

	resp, err := app.Client.Get(app.Server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestIndexWithNoQuestions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	status, body := app.getBody(t, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "No polls are available.")
}

func TestIndexShowsOnlyPublishedQuestionsWithChoices(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	past := app.createQuestion(t, "Past question.", -30, "Sure.")
	future := app.createQuestion(t, "Future question.", 30, "Sure.")
	app.insertQuestionWithoutChoices(t, "The buggers?", -1)

	status, body := app.getBody(t, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, past.Text)
	assert.NotContains(t, body, future.Text)
	assert.NotContains(t, body, "The buggers?")
}

func TestIndexOrdersNewestFirst(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	app.createQuestion(t, "Past question 1", -30, "Sure.")
	app.createQuestion(t, "Past question 2", -5, "Sure.")

	status, body := app.getBody(t, "/")
	assert.Equal(t, http.StatusOK, status)

	newerIdx := strings.Index(body, "Past question 2")
	olderIdx := strings.Index(body, "Past question 1")
	require.NotEqual(t, -1, newerIdx)
	require.NotEqual(t, -1, olderIdx)
	assert.Less(t, newerIdx, olderIdx, "newer question listed before older one")
}

func TestIndexCapsAtFiveQuestions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	for i := 1; i <= 6; i++ {
		app.createQuestion(t, fmt.Sprintf("Question %d", i), -i, "Sure.")
	}

	status, body := app.getBody(t, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 5, strings.Count(body, "<li>"))
	assert.NotContains(t, body, "Question 6", "the oldest question falls off the index")
}

func TestDetailWithPastQuestion(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	past := app.createQuestion(t, "Past question", -5, "Sure.")

	status, body := app.getBody(t, "/questions/"+past.ID.String())
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, past.Text)
	assert.Contains(t, body, past.Choices[0].ID.String())
}

func TestDetailWithFutureQuestion(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	future := app.createQuestion(t, "Future question", 30, "Sure.")

	status, _ := app.getBody(t, "/questions/"+future.ID.String())
	assert.Equal(t, http.StatusNotFound, status)
}

func TestResultsWithPastQuestion(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	past := app.createQuestion(t, "Past question", -5, "Sure.")

	status, body := app.getBody(t, "/questions/"+past.ID.String()+"/results")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, past.Text)
	assert.Contains(t, body, "Sure.: 0 votes")
}

func TestResultsWithFutureQuestion(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	future := app.createQuestion(t, "Future question", 30, "Sure.")

	status, _ := app.getBody(t, "/questions/"+future.ID.String()+"/results")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHealthz(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	status, body := app.getBody(t, "/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body)
}
