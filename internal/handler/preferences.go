package handler

import (
	"net/http"

	"github.com/SkillSwap/feed-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) themeGet(c *gin.Context) {
	theme := h.services.Preferences.Theme(c.Request.Context())

	c.JSON(http.StatusOK, dto.ThemeResponse{Theme: theme})
}

func (h *Handler) themePut(c *gin.Context) {
	var input dto.SetThemeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Preferences.SetTheme(c.Request.Context(), input.Theme); err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.ThemeResponse{Theme: input.Theme})
}

func (h *Handler) sessionGet(c *gin.Context) {
	user, err := h.services.Preferences.CurrentUser(c.Request.Context())
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, *user)
}

func (h *Handler) sessionPut(c *gin.Context) {
	var input dto.SetCurrentUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if err := h.services.Preferences.SetCurrentUser(c.Request.Context(), input.UserID); err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "current user updated"))
}
