package news

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nazarious-ucu/city-dashboard/internal/models"
)

type newsGetterService interface {
	GetNews(ctx context.Context, query string) []models.NewsArticle
}

type Handler struct {
	service newsGetterService
}

func NewHandler(svc newsGetterService) *Handler {
	return &Handler{service: svc}
}

// GetNews
// @Summary Latest news
// @Description Returns up to four recent English articles matching the query. Never fails; problems yield an empty list.
// @Tags news
// @Produce json
// @Param q query string false "Search query, usually the city name"
// @Success 200 {array} models.NewsArticle
// @Router /news [get]
func (h *Handler) GetNews(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetNews(c.Request.Context(), c.Query("q")))
}
