package handler

import (
	"errors"
	"net/http"
	"os"

	"github.com/MohamedHany17m8/x-from-scratch/internal/dto"
	"github.com/MohamedHany17m8/x-from-scratch/internal/service"
	"github.com/MohamedHany17m8/x-from-scratch/pkg/utils"
	"github.com/gin-gonic/gin"
)

const userKey = "user"

// authMiddleware is the access guard: it turns the session cookie into the
// authenticated account and attaches it, password stripped, to the request
// context. Requests without a verifiable session never reach a handler.
func (h *Handler) authMiddleware(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	userID, err := utils.ParseSessionToken(token, []byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errInvalidSession.Error()))
		c.Abort()
		return
	}

	user, err := h.services.User.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
		} else {
			c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		}
		c.Abort()
		return
	}

	user.Password = ""
	c.Set(userKey, *user)

	c.Next()
}
