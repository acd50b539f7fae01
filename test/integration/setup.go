package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "pollsite/internal/adapters/handler/http"
	repo "pollsite/internal/adapters/repository/postgres"
	"pollsite/internal/core/domain"
	"pollsite/internal/core/services"
)

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	DBContainer testcontainers.Container
}

func setupTestApp(t *testing.T) *TestApp {
	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	questionRepo := repo.NewQuestionRepository(db)
	choiceRepo := repo.NewChoiceRepository(db)

	pollService := services.NewPollService(questionRepo)
	voteService := services.NewVoteService(questionRepo, choiceRepo)

	renderer, err := handler.NewRenderer()
	require.NoError(t, err)

	pollHandler := handler.NewPollHandler(pollService, renderer)
	voteHandler := handler.NewVoteHandler(voteService, renderer)
	healthHandler := handler.NewHealthHandler(db)
	router := handler.NewHandler(pollHandler, voteHandler, healthHandler)

	server := httptest.NewServer(router)

	// Redirects stay visible to assertions instead of being followed.
	client := server.Client()
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      client,
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// createQuestion seeds a question through the admin API, published the given
// number of days offset from now. Negative days means published in the past.
func (app *TestApp) createQuestion(t *testing.T, text string, days int, choices ...string) domain.Question {
	t.Helper()

	payload := map[string]any{
		"text":     text,
		"pub_date": time.Now().AddDate(0, 0, days),
		"choices":  choices,
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := app.Client.Post(app.Server.URL+"/api/questions", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var question domain.Question
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&question))
	return question
}

// insertQuestionWithoutChoices seeds directly through SQL; the admin API
// refuses choiceless questions.
func (app *TestApp) insertQuestionWithoutChoices(t *testing.T, text string, days int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := app.DB.Exec(
		"INSERT INTO questions (id, question_text, pub_date) VALUES ($1, $2, $3)",
		id, text, time.Now().AddDate(0, 0, days),
	)
	require.NoError(t, err)
	return id
}

func (app *TestApp) choiceVotes(t *testing.T, choiceID uuid.UUID) int64 {
	t.Helper()

	var votes int64
	err := app.DB.QueryRow("SELECT votes FROM choices WHERE id = $1", choiceID).Scan(&votes)
	require.NoError(t, err)
	return votes
}
