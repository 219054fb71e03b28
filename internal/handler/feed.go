package handler

import (
	"net/http"
	"strconv"

	"github.com/SkillSwap/feed-service/internal/dto"
	"github.com/SkillSwap/feed-service/internal/store"
	"github.com/gin-gonic/gin"
)

func (h *Handler) feedGet(c *gin.Context) {
	mode, err := store.ParseSortMode(c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	posts := h.services.Feed.Query(c.Request.Context(), c.Query("search"), mode)

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) analyticsGet(c *gin.Context) {
	top := store.DefaultTopContributors
	if topString := c.Query("top"); topString != "" {
		parsed, err := strconv.Atoi(topString)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, "top must be a positive int"))
			return
		}
		top = parsed
	}

	analytics := h.services.Feed.Analytics(c.Request.Context(), top)

	c.JSON(http.StatusOK, analytics)
}
