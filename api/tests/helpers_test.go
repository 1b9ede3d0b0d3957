package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Courtside/api/controllers"
	"Courtside/api/models"
	"Courtside/api/responses"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer wires the API against a fresh in-memory database.
func newTestServer(t *testing.T) *controllers.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := models.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}

	server := &controllers.Server{DB: db, Router: gin.New(), Metrics: controllers.NewMetrics()}
	r := server.Router

	r.GET("/healthz", server.Health)
	r.GET("/metrics", gin.WrapH(server.Metrics.Handler()))

	v1 := r.Group("/api/v1")
	v1.POST("/players", server.CreatePlayer)
	v1.GET("/players", server.GetPlayers)
	v1.GET("/players/:id", server.GetPlayer)
	v1.PUT("/players/:id", server.UpdatePlayer)
	v1.DELETE("/players/:id", server.DeletePlayer)

	v1.POST("/teams", server.CreateTeam)
	v1.GET("/teams", server.GetTeams)
	v1.GET("/teams/:id", server.GetTeam)
	v1.PUT("/teams/:id", server.UpdateTeam)
	v1.DELETE("/teams/:id", server.DeleteTeam)
	v1.POST("/teams/:id/players/:player_id", server.AddTeamPlayer)
	v1.DELETE("/teams/:id/players/:player_id", server.RemoveTeamPlayer)

	v1.POST("/courts", server.CreateCourt)
	v1.GET("/courts", server.GetCourts)
	v1.GET("/courts/:id", server.GetCourt)
	v1.PUT("/courts/:id", server.UpdateCourt)
	v1.DELETE("/courts/:id", server.DeleteCourt)

	v1.POST("/tournaments", server.CreateTournament)
	v1.GET("/tournaments", server.GetTournaments)
	v1.GET("/tournaments/:id", server.GetTournament)
	v1.PUT("/tournaments/:id", server.UpdateTournament)
	v1.DELETE("/tournaments/:id", server.DeleteTournament)
	v1.POST("/tournaments/:id/matches/:match_id/result", server.RecordMatchResult)

	v1.GET("/snapshot", server.ExportSnapshot)
	v1.PUT("/snapshot", server.ImportSnapshot)
	v1.POST("/snapshot/backup", server.BackupSnapshot)

	return server
}

func doJSON(t *testing.T, server *controllers.Server, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Error creating request body: %v", err)
		}
	}
	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("Error creating HTTP request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	server.Router.ServeHTTP(w, req)
	return w
}

type envelope[T any] struct {
	Status   int               `json:"status"`
	Response T                 `json:"response"`
	Error    string            `json:"error"`
	Errors   map[string]string `json:"errors"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var out envelope[T]
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("Error unmarshalling response body %q: %v", w.Body.String(), err)
	}
	return out
}

func createPlayer(t *testing.T, server *controllers.Server, name string, skill int) controllers.PlayerDTO {
	t.Helper()
	w := doJSON(t, server, http.MethodPost, "/api/v1/players", map[string]interface{}{
		"name":        name,
		"skill_level": skill,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[controllers.PlayerDTO](t, w).Response
}

func createTeam(t *testing.T, server *controllers.Server, name string, playerIDs ...string) controllers.TeamDTO {
	t.Helper()
	if playerIDs == nil {
		playerIDs = []string{}
	}
	w := doJSON(t, server, http.MethodPost, "/api/v1/teams", map[string]interface{}{
		"name":       name,
		"player_ids": playerIDs,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[controllers.TeamDTO](t, w).Response
}

func createTeams(t *testing.T, server *controllers.Server, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, createTeam(t, server, string(rune('A'+i))+" Team").ID)
	}
	return ids
}

func createTournament(t *testing.T, server *controllers.Server, name string, teamIDs []string, seed int64) responses.TournamentResponse {
	t.Helper()
	w := doJSON(t, server, http.MethodPost, "/api/v1/tournaments", map[string]interface{}{
		"name":     name,
		"team_ids": teamIDs,
		"seed":     seed,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[responses.TournamentResponse](t, w).Response
}

func recordResult(t *testing.T, server *controllers.Server, tournamentID, matchID string, score1, score2 int) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, server, http.MethodPost,
		"/api/v1/tournaments/"+tournamentID+"/matches/"+matchID+"/result",
		map[string]int{"score1": score1, "score2": score2})
}
