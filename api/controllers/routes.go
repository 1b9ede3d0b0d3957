package controllers

import (
	"Courtside/api/middlewares"

	"github.com/gin-gonic/gin"
)

func (s *Server) initializeRoutes() {

	s.Router.GET("/healthz", s.Health)
	s.Router.GET("/metrics", gin.WrapH(s.Metrics.Handler()))

	v1 := s.Router.Group("/api/v1")
	{
		// Player routes
		v1.POST("/players", s.CreatePlayer)
		v1.GET("/players", s.GetPlayers)
		v1.GET("/players/:id", s.GetPlayer)
		v1.PUT("/players/:id", s.UpdatePlayer)
		v1.DELETE("/players/:id", s.DeletePlayer)

		// Team routes
		v1.POST("/teams", s.CreateTeam)
		v1.GET("/teams", s.GetTeams)
		v1.GET("/teams/:id", s.GetTeam)
		v1.PUT("/teams/:id", s.UpdateTeam)
		v1.DELETE("/teams/:id", s.DeleteTeam)
		v1.POST("/teams/:id/players/:player_id", s.AddTeamPlayer)
		v1.DELETE("/teams/:id/players/:player_id", s.RemoveTeamPlayer)

		// Court routes
		v1.POST("/courts", s.CreateCourt)
		v1.GET("/courts", s.GetCourts)
		v1.GET("/courts/:id", s.GetCourt)
		v1.PUT("/courts/:id", s.UpdateCourt)
		v1.DELETE("/courts/:id", s.DeleteCourt)

		// Tournament routes
		v1.POST("/tournaments", s.CreateTournament)
		v1.GET("/tournaments", s.GetTournaments)
		v1.GET("/tournaments/:id", s.GetTournament)
		v1.PUT("/tournaments/:id", s.UpdateTournament)
		v1.DELETE("/tournaments/:id", s.DeleteTournament)
		v1.POST("/tournaments/:id/matches/:match_id/result", s.RecordMatchResult)

		// Snapshot routes
		bulk := v1.Group("/snapshot", middlewares.BulkRateLimitMiddleware())
		bulk.GET("", s.ExportSnapshot)
		bulk.PUT("", s.ImportSnapshot)
		bulk.POST("/backup", s.BackupSnapshot)
	}
}
