//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator_Singleton(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{name: "english", key: ErrKeyUnknownCarrier, locale: "en", expected: "Unknown carrier, expected USPS or UPS"},
		{name: "portuguese", key: ErrKeySettingsUnavailable, locale: "pt", expected: "Armazenamento de configurações indisponível"},
		{name: "dutch", key: ErrKeyInvalidRequest, locale: "nl", expected: "Ongeldig verzoek"},
		{name: "empty locale uses english", key: ErrKeyTimeout, locale: "", expected: "Request timed out"},
		{name: "unsupported locale uses english", key: ErrKeyTimeout, locale: "fr", expected: "Request timed out"},
		{name: "unknown key returns the key", key: "error.nope", locale: "pt", expected: "error.nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestTranslator_Translatef(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		args     []interface{}
		expected string
	}{
		{
			name:     "carrier count",
			key:      MsgKeyCredentialsOK,
			locale:   "en",
			args:     []interface{}{4},
			expected: "Connection successful! Found 4 carriers.",
		},
		{
			name:     "status code in dutch",
			key:      MsgKeyCredentialsUnexpectedStatus,
			locale:   "nl",
			args:     []interface{}{500},
			expected: "API gaf fout 500 terug",
		},
		{
			name:     "transport detail in portuguese",
			key:      MsgKeyCredentialsTransportFailure,
			locale:   "pt",
			args:     []interface{}{"dial tcp: timeout"},
			expected: "Falha na conexão: dial tcp: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translatef(tt.key, tt.locale, tt.args...))
		})
	}
}

func TestParseAcceptLanguage(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		header   string
		expected string
	}{
		{header: "", expected: DefaultLocale},
		{header: "pt", expected: "pt"},
		{header: "NL", expected: "nl"},
		{header: "pt-BR", expected: "pt"},
		{header: "en-US,en;q=0.9,pt;q=0.8", expected: "en"},
		{header: "fr-FR, nl;q=0.7, pt;q=0.5", expected: "nl"},
		{header: "en;q=0.2, pt;q=0.9", expected: "pt"},
		{header: "nl;q=0, pt;q=0.1", expected: "pt"},
		{header: "de, fr", expected: DefaultLocale},
		{header: "pt;q=bogus, nl;q=0.5", expected: "pt"},
		{header: " , ;q=1", expected: DefaultLocale},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAcceptLanguage(tt.header, translator))
		})
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/rates", nil)
	c.Request.Header.Set(AcceptLanguageHeader, "fr, pt-BR;q=0.8")

	assert.Equal(t, "pt", GetLocale(c))
}

func TestMessages_AllLocalesComplete(t *testing.T) {
	messages := getDefaultMessages()
	for key := range messages[DefaultLocale] {
		for locale, catalog := range messages {
			_, ok := catalog[key]
			assert.True(t, ok, "locale %s is missing %s", locale, key)
		}
	}
}
