package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/shiprate-service/internal/domain/dto"
	"github.com/guttosm/shiprate-service/internal/domain/model"
	"github.com/guttosm/shiprate-service/internal/i18n"
	"github.com/guttosm/shiprate-service/internal/middleware"
)

func newTestContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	middleware.RequestID()(c)
	return c, w
}

func TestBuildRequestAndValidate(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		malformed       bool
		validationField string
	}{
		{
			name: "valid request",
			body: `{"destination": {"postal_code": "90210", "country": "US"}, "items": [{"item_ref": "a", "quantity": 2}]}`,
		},
		{
			name:      "invalid JSON",
			body:      `{"items": invalid}`,
			malformed: true,
		},
		{
			name:      "empty body",
			body:      ``,
			malformed: true,
		},
		{
			name:            "negative quantity",
			body:            `{"items": [{"item_ref": "a", "quantity": -2}]}`,
			validationField: "items[0].quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, tt.body)

			result, err := BuildRequestAndValidate[dto.CalculateRatesRequest](c)

			switch {
			case tt.malformed:
				assert.ErrorIs(t, err, ErrMalformedBody)
				assert.Nil(t, result)
			case tt.validationField != "":
				var validationErr *dto.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.validationField, validationErr.Field)
				assert.NotErrorIs(t, err, ErrMalformedBody)
			default:
				require.NoError(t, err)
				require.Len(t, result.Items, 1)
				assert.Equal(t, 2, result.Items[0].Quantity)
			}
		})
	}
}

func TestBuildRequest_SkipsValidation(t *testing.T) {
	c, _ := newTestContext(http.MethodPost, `{"items": [{"quantity": -1}]}`)

	result, err := BuildRequest[dto.CalculateRatesRequest](c)

	require.NoError(t, err)
	assert.Equal(t, -1, result.Items[0].Quantity)
}

func TestResponseBuilder_Success(t *testing.T) {
	c, w := newTestContext(http.MethodPost, "")

	NewResponseBuilder(c).SuccessOK(dto.RatesResponse{Rates: []model.QuotedRate{}, Source: "cache", Outcome: "ok"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, middleware.GetRequestID(c), resp.RequestID)
	assert.NotZero(t, resp.Timestamp)
	assert.JSONEq(t, `{"rates":[],"source":"cache","outcome":"ok"}`, string(mustMarshal(t, resp.Data)))
}

func TestResponseBuilder_PooledResponsesDoNotLeak(t *testing.T) {
	first, w1 := newTestContext(http.MethodGet, "")
	NewResponseBuilder(first).ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyValidationItems,
		map[string]string{"items[0]": "must not be negative"}, nil)

	second, w2 := newTestContext(http.MethodGet, "")
	NewResponseBuilder(second).Error(http.StatusServiceUnavailable, i18n.ErrKeySettingsUnavailable, nil)

	var a, b dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w1.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &b))
	assert.Len(t, a.Details, 1)
	assert.Empty(t, b.Details)
	assert.NotEqual(t, a.RequestID, b.RequestID)
}

func TestResponseBuilder_Error(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		key          string
		locale       string
		expectedCode string
		expectedMsg  string
	}{
		{
			name:         "bad request",
			status:       http.StatusBadRequest,
			key:          i18n.ErrKeyInvalidRequestBody,
			expectedCode: dto.ErrCodeInvalidRequest,
		},
		{
			name:         "store unavailable",
			status:       http.StatusServiceUnavailable,
			key:          i18n.ErrKeySettingsUnavailable,
			expectedCode: dto.ErrCodeInternal,
			expectedMsg:  "Settings store is unavailable",
		},
		{
			name:         "unknown carrier in Dutch",
			status:       http.StatusBadRequest,
			key:          i18n.ErrKeyUnknownCarrier,
			locale:       "nl",
			expectedCode: dto.ErrCodeInvalidRequest,
			expectedMsg:  i18n.GetTranslator().Translate(i18n.ErrKeyUnknownCarrier, "nl"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet, "")
			if tt.locale != "" {
				c.Request.Header.Set("Accept-Language", tt.locale)
			}
			cause := errors.New("cause")

			NewResponseBuilder(c).Error(tt.status, tt.key, cause)

			assert.Equal(t, tt.status, w.Code)
			assert.True(t, c.IsAborted())
			require.Len(t, c.Errors, 1)
			assert.Equal(t, cause, c.Errors[0].Err)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.NotEmpty(t, resp.Message)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, resp.Message)
			}
		})
	}
}

func TestResponseBuilder_ErrorContentLanguage(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "")
	c.Request.Header.Set("Accept-Language", "pt-BR,pt;q=0.9")

	NewResponseBuilder(c).Error(http.StatusBadGateway, i18n.ErrKeyProviderUnavailable, nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "pt", w.Header().Get("Content-Language"))
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Falha na requisição ao ShipStation", resp.Message)
	assert.Empty(t, c.Errors)
}

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}
