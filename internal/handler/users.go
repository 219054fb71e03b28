package handler

import (
	"net/http"

	"github.com/SkillSwap/feed-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) usersUpsert(c *gin.Context) {
	var input dto.UpsertUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	user, err := h.services.User.Upsert(c.Request.Context(), input)
	if err != nil {
		c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, *user)
}
