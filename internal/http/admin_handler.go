package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/shiprate-service/internal/domain/dto"
	"github.com/guttosm/shiprate-service/internal/domain/model"
	"github.com/guttosm/shiprate-service/internal/i18n"
	"github.com/guttosm/shiprate-service/internal/middleware"
	"github.com/guttosm/shiprate-service/internal/service"
	"github.com/guttosm/shiprate-service/internal/shipstation"
)

// CredentialTester verifies an API key pair against the provider.
type CredentialTester interface {
	TestCredentials(ctx context.Context, key, secret string) shipstation.CredentialCheck
}

// AdminHandler serves the administrator endpoints.
type AdminHandler struct {
	tester    CredentialTester
	settings  service.SettingsProvider
	manager   service.SettingsManager
	discovery *service.ServiceDiscovery
}

// AdminOption configures an AdminHandler.
type AdminOption func(*AdminHandler)

// WithSettingsManager enables the settings read and update endpoints.
func WithSettingsManager(manager service.SettingsManager) AdminOption {
	return func(h *AdminHandler) {
		h.manager = manager
	}
}

// WithDiscovery enables the service discovery endpoint.
func WithDiscovery(discovery *service.ServiceDiscovery) AdminOption {
	return func(h *AdminHandler) {
		h.discovery = discovery
	}
}

// NewAdminHandler creates an AdminHandler. settings supplies the stored
// credentials used when a credential test omits them.
func NewAdminHandler(tester CredentialTester, settings service.SettingsProvider, opts ...AdminOption) *AdminHandler {
	h := &AdminHandler{tester: tester, settings: settings}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ListServices handles GET /api/admin/services.
//
// @Summary      List carriers and services
// @Description  Returns the built-in USPS and UPS service catalog used to build the settings screen.
// @Tags         Admin
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200 {object} dto.SuccessResponse{data=dto.ServicesResponse}
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Router       /api/admin/services [get]
func (h *AdminHandler) ListServices(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.ServicesResponse{Carriers: model.Carriers()})
}

// TestCredentials handles POST /api/admin/credentials/test.
//
// The outcome is always reported with 200; Success and Reason say whether the
// provider accepted the pair.
//
// @Summary      Test provider credentials
// @Description  Calls the provider's carrier listing with the given key pair. Masked values are replaced by the stored credentials. An empty key or secret is reported as missing_input without calling the provider.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        request body dto.TestCredentialsRequest true "Credentials to test"
// @Success      200 {object} dto.SuccessResponse{data=dto.CredentialTestResponse}
// @Failure      400 {object} dto.ErrorResponse "Malformed body"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Router       /api/admin/credentials/test [post]
func (h *AdminHandler) TestCredentials(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.TestCredentialsRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	ctx := c.Request.Context()
	key, secret := h.resolveCredentials(ctx, req.APIKey, req.APISecret)
	check := shipstation.CredentialCheck{Reason: shipstation.ReasonMissingInput}
	if key != "" && secret != "" {
		check = h.tester.TestCredentials(ctx, key, secret)
	}

	zerolog.Ctx(ctx).Info().
		Bool("success", check.Success).
		Str("reason", check.Reason).
		Int("status_code", check.StatusCode).
		Msg("credential test")

	builder.SuccessOK(dto.CredentialTestResponse{
		Success:      check.Success,
		Reason:       check.Reason,
		Message:      credentialMessage(check, i18n.GetLocale(c)),
		StatusCode:   check.StatusCode,
		CarrierCount: check.CarrierCount,
	})
}

// resolveCredentials swaps masked values for the stored credentials. Empty
// values stay empty so a cleared field is reported as missing input.
func (h *AdminHandler) resolveCredentials(ctx context.Context, key, secret string) (string, string) {
	if h.settings == nil || (key == "" && secret == "") {
		return key, secret
	}
	stored, err := h.settings.Settings(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("stored credentials unavailable")
		return key, secret
	}
	merged := service.MergeSecrets(model.Settings{APIKey: key, APISecret: secret}, stored)
	return merged.APIKey, merged.APISecret
}

func credentialMessage(check shipstation.CredentialCheck, locale string) string {
	translator := i18n.GetTranslator()
	switch check.Reason {
	case shipstation.ReasonOK:
		return translator.Translatef(i18n.MsgKeyCredentialsOK, locale, check.CarrierCount)
	case shipstation.ReasonMissingInput:
		return translator.Translate(i18n.MsgKeyCredentialsRequired, locale)
	case shipstation.ReasonAuthFailed:
		return translator.Translate(i18n.MsgKeyCredentialsAuthFailed, locale)
	case shipstation.ReasonUnexpectedStatus:
		return translator.Translatef(i18n.MsgKeyCredentialsUnexpectedStatus, locale, check.StatusCode)
	default:
		return translator.Translatef(i18n.MsgKeyCredentialsTransportFailure, locale, check.Detail)
	}
}

// GetSettings handles GET /api/admin/settings.
//
// @Summary      Read settings
// @Description  Returns the stored settings document with the API key and secret masked.
// @Tags         Admin
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200 {object} dto.SuccessResponse{data=dto.SettingsResponse}
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "Settings store unavailable"
// @Router       /api/admin/settings [get]
func (h *AdminHandler) GetSettings(c *gin.Context) {
	builder := NewResponseBuilder(c)

	view, err := h.manager.Current(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeySettingsUnavailable, err)
		return
	}
	builder.SuccessOK(settingsResponse(view))
}

// UpdateSettings handles PUT /api/admin/settings.
//
// @Summary      Replace settings
// @Description  Validates and stores a new settings document. Masked credentials keep their stored values. The rate pipeline sees the change on its next request.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        request body dto.UpdateSettingsRequest true "New settings"
// @Success      200 {object} dto.SuccessResponse{data=dto.SettingsResponse}
// @Failure      400 {object} dto.ErrorResponse "Malformed body or invalid settings"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "Settings store unavailable"
// @Router       /api/admin/settings [put]
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.UpdateSettingsRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	ctx := c.Request.Context()
	current, err := h.manager.Current(ctx)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeySettingsUnavailable, err)
		return
	}

	incoming := service.MergeSecrets(req.Settings.ToSettings(), current.Settings)
	view, err := h.manager.Save(ctx, incoming, updatedBy(c, req.UpdatedBy))
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyValidationSettings,
				map[string]string{validationErr.Field: validationErr.Message}, err)
			return
		}
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeySettingsUnavailable, err)
		return
	}

	zerolog.Ctx(ctx).Info().
		Int("version", view.Version).
		Str("updated_by", view.UpdatedBy).
		Msg("settings updated")

	builder.SuccessOK(settingsResponse(view))
}

// DiscoverServices handles POST /api/admin/services/discover.
//
// @Summary      Discover carrier services
// @Description  Quotes a probe shipment from the store address to itself and adds every service code the provider returns to the settings, disabled.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        request body dto.DiscoverServicesRequest true "Carrier to probe"
// @Success      200 {object} dto.SuccessResponse{data=dto.DiscoveryResponse}
// @Failure      400 {object} dto.ErrorResponse "Unknown carrier, missing credentials or store address"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      502 {object} dto.ErrorResponse "Provider failed"
// @Failure      503 {object} dto.ErrorResponse "Settings store unavailable"
// @Router       /api/admin/services/discover [post]
func (h *AdminHandler) DiscoverServices(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.DiscoverServicesRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	ctx := c.Request.Context()
	result, err := h.discovery.Discover(ctx, req.Carrier, updatedBy(c, req.UpdatedBy))
	if err != nil {
		h.discoveryError(builder, err)
		return
	}

	zerolog.Ctx(ctx).Info().
		Str("carrier", result.Carrier.Name).
		Int("discovered", len(result.Discovered)).
		Strs("added", result.Added).
		Msg("services discovered")

	added := result.Added
	if added == nil {
		added = []string{}
	}
	builder.SuccessOK(dto.DiscoveryResponse{
		Carrier:    result.Carrier.Name,
		Discovered: result.Discovered,
		Added:      added,
		Version:    result.Version,
	})
}

func (h *AdminHandler) discoveryError(builder *ResponseBuilder, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrUnknownCarrier):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownCarrier, err)
	case errors.Is(err, shipstation.ErrMissingCredentials):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyCredentialsNotConfigured, err)
	case errors.As(err, &validationErr):
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyValidationSettings,
			map[string]string{validationErr.Field: validationErr.Message}, err)
	case shipstation.Kind(err) != shipstation.KindUnknown:
		builder.Error(http.StatusBadGateway, i18n.ErrKeyProviderUnavailable, err)
	default:
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeySettingsUnavailable, err)
	}
}

// updatedBy prefers the name in the request body over the API key identity.
func updatedBy(c *gin.Context, requested string) string {
	if requested != "" {
		return requested
	}
	return middleware.GetAdminIdentity(c)
}

func settingsResponse(view service.SettingsView) dto.SettingsResponse {
	masked := view.Settings
	masked.APIKey = service.MaskSecret(masked.APIKey)
	masked.APISecret = service.MaskSecret(masked.APISecret)

	resp := dto.SettingsResponse{
		Settings:  dto.NewSettingsPayload(masked),
		Version:   view.Version,
		UpdatedBy: view.UpdatedBy,
		Source:    view.Source,
	}
	if !view.UpdatedAt.IsZero() {
		updatedAt := view.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
