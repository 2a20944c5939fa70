package http

import (
	"github.com/gdugdh24/reunion-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/reunion-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	profileHandler  *handler.ProfileHandler
	matchingHandler *handler.MatchingHandler
	matchHandler    *handler.MatchHandler
	authMiddleware  *middleware.AuthMiddleware
}

func NewRouter(
	profileHandler *handler.ProfileHandler,
	matchingHandler *handler.MatchingHandler,
	matchHandler *handler.MatchHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		profileHandler:  profileHandler,
		matchingHandler: matchingHandler,
		matchHandler:    matchHandler,
		authMiddleware:  authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
	)

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	v1 := router.Group("/api/v1")
	v1.Use(r.authMiddleware.RequireAuth())
	{
		profile := v1.Group("/profile/me")
		{
			profile.GET("", r.profileHandler.GetMyProfile)
			profile.PUT("", r.profileHandler.UpsertMyProfile)

			targets := profile.Group("/target-people")
			targets.GET("", r.profileHandler.ListTargetPeople)
			targets.POST("", r.profileHandler.CreateTargetPerson)
			targets.PUT("/:id", r.profileHandler.UpdateTargetPerson)
			targets.DELETE("/:id", r.profileHandler.DeleteTargetPerson)
		}

		v1.GET("/matching/candidates", r.matchingHandler.GetCandidates)

		matches := v1.Group("/matches")
		{
			matches.GET("", r.matchHandler.ListMatches)
			matches.POST("", r.matchHandler.CreateMatch)
			matches.POST("/:id/respond", r.matchHandler.RespondToMatch)
		}
	}

	return router
}
