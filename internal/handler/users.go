package handler

import (
	"net/http"
	"strings"

	"github.com/MohamedHany17m8/x-from-scratch/internal/dto"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) usersGetProfile(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))

	user, err := h.services.User.GetProfile(c.Request.Context(), username)
	if err != nil {
		c.JSON(statusForError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) usersGetSuggested(c *gin.Context) {
	user := h.getUser(c)

	suggested, err := h.services.User.GetSuggested(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(statusForError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, suggested)
}

func (h *Handler) usersFollowUnfollow(c *gin.Context) {
	user := h.getUser(c)

	targetID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	if err := h.services.User.FollowUnfollow(c.Request.Context(), user.ID, targetID); err != nil {
		c.JSON(statusForError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) usersUpdate(c *gin.Context) {
	user := h.getUser(c)

	var input dto.UpdateUserDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	updated, err := h.services.User.Update(c.Request.Context(), user.ID, input)
	if err != nil {
		c.JSON(statusForError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, updated)
}
