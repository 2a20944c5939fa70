package handler

import (
	"net/http"

	"github.com/gdugdh24/reunion-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// GetMyProfile handles GET /profile/me
// @Summary Get my profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	p, err := h.profileUseCase.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpsertMyProfile handles PUT /profile/me
// @Summary Create or replace my profile
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.UpsertProfileRequest true "Profile data"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [put]
func (h *ProfileHandler) UpsertMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profile.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	p, err := h.profileUseCase.UpsertProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to save profile")
		return
	}

	c.JSON(http.StatusOK, p)
}

// ListTargetPeople handles GET /profile/me/target-people
// @Summary List the people I am looking for
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ListResponse[domain.TargetPerson]
// @Router /profile/me/target-people [get]
func (h *ProfileHandler) ListTargetPeople(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	targets, err := h.profileUseCase.ListTargetPeople(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list target people")
		return
	}

	c.JSON(http.StatusOK, newListResponse(targets))
}

// CreateTargetPerson handles POST /profile/me/target-people
// @Summary Register someone I am looking for
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.TargetPersonRequest true "Target person"
// @Success 201 {object} domain.TargetPerson
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /profile/me/target-people [post]
func (h *ProfileHandler) CreateTargetPerson(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req profile.TargetPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	target, err := h.profileUseCase.CreateTargetPerson(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "failed to create target person")
		return
	}

	c.JSON(http.StatusCreated, target)
}

// UpdateTargetPerson handles PUT /profile/me/target-people/:id
func (h *ProfileHandler) UpdateTargetPerson(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	targetID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req profile.TargetPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	target, err := h.profileUseCase.UpdateTargetPerson(c.Request.Context(), userID, targetID, &req)
	if err != nil {
		respondError(c, err, "failed to update target person")
		return
	}

	c.JSON(http.StatusOK, target)
}

// DeleteTargetPerson handles DELETE /profile/me/target-people/:id
func (h *ProfileHandler) DeleteTargetPerson(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	targetID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.profileUseCase.DeleteTargetPerson(c.Request.Context(), userID, targetID); err != nil {
		respondError(c, err, "failed to delete target person")
		return
	}

	c.Status(http.StatusNoContent)
}
