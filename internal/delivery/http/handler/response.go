package handler

import (
	"errors"
	"net/http"

	"github.com/gdugdh24/reunion-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/gdugdh24/reunion-backend/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListResponse wraps collection results
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func newListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

var errorStatus = []struct {
	err    error
	status int
}{
	{domain.ErrInvalidInput, http.StatusBadRequest},
	{domain.ErrInvalidPairing, http.StatusBadRequest},
	{domain.ErrInvalidToken, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrProfileNotFound, http.StatusNotFound},
	{domain.ErrTargetPersonNotFound, http.StatusNotFound},
	{domain.ErrMatchNotFound, http.StatusNotFound},
	{domain.ErrMatchAlreadyExists, http.StatusConflict},
	{domain.ErrMatchExcluded, http.StatusConflict},
	{domain.ErrMatchNotPending, http.StatusConflict},
	{domain.ErrTooManyTargetPeople, http.StatusConflict},
}

// respondError maps domain errors to their status code. Anything else is logged
// and answered with a generic 500 message.
func respondError(c *gin.Context, err error, internalMsg string) {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			msg := err.Error()
			if e.err != domain.ErrInvalidInput {
				msg = e.err.Error()
			}
			c.JSON(e.status, ErrorResponse{Error: msg})
			return
		}
	}

	_ = c.Error(err)
	logger.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Msg(internalMsg)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: internalMsg})
}
