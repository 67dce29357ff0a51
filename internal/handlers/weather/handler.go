package weather

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nazarious-ucu/city-dashboard/internal/models"
	"github.com/Nazarious-ucu/city-dashboard/internal/services/gateway"
	"github.com/Nazarious-ucu/city-dashboard/internal/services/provider"
)

type weatherGetterService interface {
	GetWeather(ctx context.Context, city string) (models.WeatherReport, error)
}

type Handler struct {
	service weatherGetterService
}

func NewHandler(svc weatherGetterService) *Handler {
	return &Handler{service: svc}
}

// GetWeather
// @Summary Get current weather
// @Description Returns the current weather for a given city
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} models.WeatherReport
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "Provider answer, e.g. city not found"
// @Failure 500 {object} models.ErrorResponse
// @Router /weather [get]
func (h *Handler) GetWeather(c *gin.Context) {
	city := c.Query("city")

	data, err := h.service.GetWeather(c.Request.Context(), city)
	if err != nil {
		var perr *provider.Error
		switch {
		case errors.Is(err, gateway.ErrCityRequired):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: gateway.ErrCityRequired.Error()})
		case errors.As(err, &perr):
			c.JSON(perr.StatusCode, models.ErrorResponse{Error: perr.Message})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: gateway.ErrWeatherUnavailable.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, data)
}
