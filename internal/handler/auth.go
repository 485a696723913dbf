package handler

import (
	"net/http"
	"os"

	"github.com/MohamedHany17m8/x-from-scratch/internal/dto"
	"github.com/MohamedHany17m8/x-from-scratch/pkg/utils"
	"github.com/gin-gonic/gin"
)

const sessionCookieName = "jwt"

func (h *Handler) authSignUp(c *gin.Context) {
	var input dto.SignUpDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	user, token, err := h.services.Auth.SignUp(c.Request.Context(), input)
	if err != nil {
		c.JSON(statusForError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) authSignIn(c *gin.Context) {
	var input dto.SignInDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	user, token, err := h.services.Auth.SignIn(c.Request.Context(), input)
	if err != nil {
		c.JSON(statusForError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, user)
}

func (h *Handler) authSignOut(c *gin.Context) {
	clearSessionCookie(c)
	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) authGetMe(c *gin.Context) {
	user := h.getUser(c)

	c.JSON(http.StatusOK, dto.GetUserDtoFromUser(*user))
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookieName, token, int(utils.SessionDuration.Seconds()), "/", "", secureCookies(), true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", secureCookies(), true)
}

func secureCookies() bool {
	return os.Getenv("APP_ENV") != "development"
}
