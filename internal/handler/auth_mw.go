package handler

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/SkillSwap/feed-service/internal/dto"
	"github.com/SkillSwap/feed-service/internal/model"
	"github.com/SkillSwap/feed-service/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) authMiddleware(c *gin.Context) {
	author, err := h.authorFromRequest(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	c.Set("user", *author)

	c.Next()
}

func (h *Handler) notRequiredAuthMiddleware(c *gin.Context) {
	author, err := h.authorFromRequest(c)
	if err != nil {
		c.Next()
		return
	}

	c.Set("user", *author)

	c.Next()
}

// authorFromRequest resolves the acting user from the bearer token. The
// token is the opaque session handle; its only claim the engine cares about
// is the user id, which must resolve against the entity store.
func (h *Handler) authorFromRequest(c *gin.Context) (*model.Author, error) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, errNotAuthorized
	}

	accessToken := strings.TrimPrefix(header, "Bearer ")
	if accessToken == "" {
		return nil, errNotAuthorized
	}

	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("ACCESS_SECRET")))
	if err != nil {
		return nil, err
	}

	idString, ok := claims["id"].(string)
	if !ok {
		return nil, errNotAuthorized
	}
	id, err := uuid.Parse(idString)
	if err != nil {
		return nil, err
	}

	user, err := h.userByID(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}

	author := user.Author()

	return &author, nil
}

func (h *Handler) userByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return h.services.User.FindByID(ctx, id)
}
