package handler

import (
	"net/http"

	"github.com/gdugdh24/reunion-backend/internal/usecase/matching"
	"github.com/gin-gonic/gin"
)

type MatchingHandler struct {
	matchingUseCase *matching.MatchingUseCase
}

func NewMatchingHandler(matchingUseCase *matching.MatchingUseCase) *MatchingHandler {
	return &MatchingHandler{
		matchingUseCase: matchingUseCase,
	}
}

// GetCandidates handles GET /matching/candidates
// @Summary Ranked match candidates for the current user
// @Tags matching
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ListResponse[domain.MatchCandidate]
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matching/candidates [get]
func (h *MatchingHandler) GetCandidates(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	candidates, err := h.matchingUseCase.FindCandidates(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to find candidates")
		return
	}

	c.JSON(http.StatusOK, newListResponse(candidates))
}
