package currency

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nazarious-ucu/city-dashboard/internal/models"
	"github.com/Nazarious-ucu/city-dashboard/internal/services/gateway"
)

type currencyService interface {
	GetExchangeRates(ctx context.Context, base string) (models.ExchangeRateTable, error)
	GetCountryCurrency(ctx context.Context, code string) (string, error)
}

type Handler struct {
	service currencyService
}

func NewHandler(svc currencyService) *Handler {
	return &Handler{service: svc}
}

// GetRates
// @Summary Exchange rates
// @Description Returns the latest rate table for the base currency
// @Tags currency
// @Produce json
// @Param base query string false "ISO 4217 base currency" default(USD)
// @Success 200 {object} models.ExchangeRateTable
// @Failure 500 {object} models.ErrorResponse
// @Router /currency [get]
func (h *Handler) GetRates(c *gin.Context) {
	table, err := h.service.GetExchangeRates(c.Request.Context(), c.Query("base"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: gateway.ErrCurrencyUnavailable.Error()})
		return
	}

	c.JSON(http.StatusOK, table)
}

// GetCountryInfo
// @Summary Country currency
// @Description Returns the primary currency of a country, USD when the lookup fails
// @Tags currency
// @Produce json
// @Param code query string true "ISO 3166 alpha-2 country code"
// @Success 200 {object} models.CountryCurrency
// @Failure 400 {object} models.ErrorResponse
// @Router /country-info [get]
func (h *Handler) GetCountryInfo(c *gin.Context) {
	currency, err := h.service.GetCountryCurrency(c.Request.Context(), c.Query("code"))
	if err != nil {
		if errors.Is(err, gateway.ErrCountryCodeRequired) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}
		currency = gateway.DefaultCurrency
	}

	c.JSON(http.StatusOK, models.CountryCurrency{Currency: currency})
}
