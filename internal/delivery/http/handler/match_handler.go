package handler

import (
	"net/http"
	"strconv"

	"github.com/gdugdh24/reunion-backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

// CreateMatch handles POST /matches
// @Summary Request a match with another user
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body match.CreateMatchRequest true "Counterpart"
// @Success 201 {object} domain.Match
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req match.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	m, err := h.matchUseCase.RequestMatch(c.Request.Context(), userID, req.MatchedUserID)
	if err != nil {
		respondError(c, err, "failed to create match")
		return
	}

	c.JSON(http.StatusCreated, m)
}

// RespondToMatch handles POST /matches/:id/respond
// @Summary Accept or reject a pending match
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body match.RespondRequest true "Answer"
// @Success 200 {object} domain.Match
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /matches/{id}/respond [post]
func (h *MatchHandler) RespondToMatch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	matchID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req match.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	m, err := h.matchUseCase.RespondToMatch(c.Request.Context(), userID, matchID, *req.Accept)
	if err != nil {
		respondError(c, err, "failed to respond to match")
		return
	}

	c.JSON(http.StatusOK, m)
}

// ListMatches handles GET /matches
// @Summary List my matches
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} ListResponse[domain.Match]
// @Router /matches [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	matches, err := h.matchUseCase.ListMatches(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respondError(c, err, "failed to list matches")
		return
	}

	c.JSON(http.StatusOK, newListResponse(matches))
}
