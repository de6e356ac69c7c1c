// Package i18n translates the user facing messages of the rate API into
// English, Portuguese and Dutch.
package i18n

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is used when the caller names no supported language.
	DefaultLocale = "en"
	// AcceptLanguageHeader carries the caller's language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator looks up messages by key and locale.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator returns a translator loaded with the built-in catalog.
func NewTranslator() *Translator {
	return &Translator{messages: getDefaultMessages()}
}

// GetTranslator returns the process wide translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Supports reports whether locale has a catalog.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// Translate returns the message for key in locale, then in DefaultLocale,
// then the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Translatef translates key and formats the result with args.
func (t *Translator) Translatef(key, locale string, args ...interface{}) string {
	return fmt.Sprintf(t.Translate(key, locale), args...)
}

// GetLocale picks the supported language the caller weighted highest in
// Accept-Language. Region subtags are ignored and q=0 entries skipped.
func GetLocale(c *gin.Context) string {
	return ParseAcceptLanguage(c.GetHeader(AcceptLanguageHeader), GetTranslator())
}

type languageRange struct {
	tag   string
	q     float64
	order int
}

// ParseAcceptLanguage resolves an Accept-Language value against the
// translator's catalogs. Ties keep header order.
func ParseAcceptLanguage(header string, t *Translator) string {
	var ranges []languageRange
	for i, part := range strings.Split(header, ",") {
		fields := strings.Split(part, ";")
		tag := strings.ToLower(strings.TrimSpace(fields[0]))
		if idx := strings.IndexByte(tag, '-'); idx > 0 {
			tag = tag[:idx]
		}
		if tag == "" {
			continue
		}

		q := 1.0
		for _, param := range fields[1:] {
			name, value, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || name != "q" {
				continue
			}
			if parsed, err := strconv.ParseFloat(value, 64); err == nil {
				q = parsed
			}
		}
		if q <= 0 {
			continue
		}
		ranges = append(ranges, languageRange{tag: tag, q: q, order: i})
	}

	sort.SliceStable(ranges, func(i, j int) bool { return ranges[i].q > ranges[j].q })
	for _, r := range ranges {
		if t.Supports(r.tag) {
			return r.tag
		}
	}
	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":            "Invalid request",
			"error.invalid_request_body":       "Invalid request body",
			"error.internal_error":             "An unexpected error occurred",
			"error.unauthorized":               "Unauthorized",
			"error.api_key_required":           "API key is required",
			"error.invalid_api_key":            "Invalid API key",
			"error.not_found":                  "Not found",
			"error.rate_limit_exceeded":        "Too many requests, please try again later",
			"error.timeout":                    "Request timed out",
			"error.validation.items":           "Item quantities, weights and dimensions must not be negative",
			"error.validation.settings":        "Settings are invalid",
			"error.unknown_carrier":            "Unknown carrier, expected USPS or UPS",
			"error.settings_unavailable":       "Settings store is unavailable",
			"error.provider_unavailable":       "ShipStation request failed",
			"error.credentials_not_configured": "ShipStation API credentials not configured",

			// Credential test messages
			"credentials.required":          "API Key and Secret are required.",
			"credentials.ok":                "Connection successful! Found %d carriers.",
			"credentials.auth_failed":       "Authentication failed. Please check your API Key and Secret.",
			"credentials.unexpected_status": "API returned error %d",
			"credentials.transport_failure": "Connection failed: %s",
		},
		"pt": {
			// Error messages
			"error.invalid_request":            "Requisição inválida",
			"error.invalid_request_body":       "Corpo da requisição inválido",
			"error.internal_error":             "Ocorreu um erro inesperado",
			"error.unauthorized":               "Não autorizado",
			"error.api_key_required":           "Chave de API é obrigatória",
			"error.invalid_api_key":            "Chave de API inválida",
			"error.not_found":                  "Não encontrado",
			"error.rate_limit_exceeded":        "Muitas requisições, tente novamente mais tarde",
			"error.timeout":                    "Tempo limite da requisição esgotado",
			"error.validation.items":           "Quantidades, pesos e dimensões dos itens não podem ser negativos",
			"error.validation.settings":        "Configurações inválidas",
			"error.unknown_carrier":            "Transportadora desconhecida, esperado USPS ou UPS",
			"error.settings_unavailable":       "Armazenamento de configurações indisponível",
			"error.provider_unavailable":       "Falha na requisição ao ShipStation",
			"error.credentials_not_configured": "Credenciais da API do ShipStation não configuradas",

			// Credential test messages
			"credentials.required":          "Chave e segredo da API são obrigatórios.",
			"credentials.ok":                "Conexão bem-sucedida! %d transportadoras encontradas.",
			"credentials.auth_failed":       "Falha na autenticação. Verifique sua chave e segredo da API.",
			"credentials.unexpected_status": "A API retornou o erro %d",
			"credentials.transport_failure": "Falha na conexão: %s",
		},
		"nl": {
			// Error messages
			"error.invalid_request":            "Ongeldig verzoek",
			"error.invalid_request_body":       "Ongeldige aanvraag body",
			"error.internal_error":             "Er is een onverwachte fout opgetreden",
			"error.unauthorized":               "Niet geautoriseerd",
			"error.api_key_required":           "API-sleutel is vereist",
			"error.invalid_api_key":            "Ongeldige API-sleutel",
			"error.not_found":                  "Niet gevonden",
			"error.rate_limit_exceeded":        "Te veel verzoeken, probeer het later opnieuw",
			"error.timeout":                    "Time-out van verzoek",
			"error.validation.items":           "Aantallen, gewichten en afmetingen mogen niet negatief zijn",
			"error.validation.settings":        "Instellingen zijn ongeldig",
			"error.unknown_carrier":            "Onbekende vervoerder, verwacht USPS of UPS",
			"error.settings_unavailable":       "Instellingenopslag is niet beschikbaar",
			"error.provider_unavailable":       "ShipStation-verzoek mislukt",
			"error.credentials_not_configured": "ShipStation API-gegevens zijn niet ingesteld",

			// Credential test messages
			"credentials.required":          "API-sleutel en geheim zijn vereist.",
			"credentials.ok":                "Verbinding geslaagd! %d vervoerders gevonden.",
			"credentials.auth_failed":       "Authenticatie mislukt. Controleer uw API-sleutel en geheim.",
			"credentials.unexpected_status": "API gaf fout %d terug",
			"credentials.transport_failure": "Verbinding mislukt: %s",
		},
	}
}
