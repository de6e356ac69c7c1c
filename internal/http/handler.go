package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/shiprate-service/internal/domain/dto"
	"github.com/guttosm/shiprate-service/internal/i18n"
	"github.com/guttosm/shiprate-service/internal/service"
)

// Handler serves the checkout-facing rates endpoint.
type Handler struct {
	calculator service.RateCalculator
}

// NewHandler creates a new Handler instance.
func NewHandler(calculator service.RateCalculator) *Handler {
	return &Handler{calculator: calculator}
}

// CalculateRates handles POST /api/rates requests.
//
// An incomplete destination or a cart without shippable items is not an
// error: the response is 200 with an empty rates list and an outcome that
// says why.
//
// @Summary      Quote shipping rates for a cart
// @Description  Consolidates the cart into one package, quotes USPS and UPS through ShipStation and returns the services the store has enabled, sorted by cost. Results are cached per cart and destination.
// @Tags         Rates
// @Accept       json
// @Produce      json
// @Param        request body dto.CalculateRatesRequest true "Cart and destination"
// @Success      200 {object} dto.SuccessResponse{data=dto.RatesResponse} "Quoted rates"
// @Failure      400 {object} dto.ErrorResponse "Malformed body or negative quantity"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      504 {object} dto.ErrorResponse "Request timed out"
// @Router       /api/rates [post]
func (h *Handler) CalculateRates(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CalculateRatesRequest](c)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyValidationItems,
				map[string]string{validationErr.Field: validationErr.Message}, err)
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	ctx := c.Request.Context()
	result := h.calculator.Calculate(ctx, req.ToQuery())

	zerolog.Ctx(ctx).Debug().
		Str("source", string(result.Source)).
		Str("outcome", result.Outcome).
		Int("rates", len(result.Rates)).
		Int("carrier_errors", len(result.CarrierErrors)).
		Msg("rates calculated")

	builder.SuccessOK(dto.NewRatesResponse(result))
}
