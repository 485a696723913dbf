package handler

import (
	"net/http"

	"github.com/MohamedHany17m8/x-from-scratch/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) notificationsGetAll(c *gin.Context) {
	user := h.getUser(c)

	notifications, err := h.services.Notification.GetAll(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(statusForError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h *Handler) notificationsDeleteAll(c *gin.Context) {
	user := h.getUser(c)

	if err := h.services.Notification.DeleteAll(c.Request.Context(), user.ID); err != nil {
		c.JSON(statusForError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "notifications deleted successfully"))
}
