package http

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/shiprate-service/internal/domain/dto"
	"github.com/guttosm/shiprate-service/internal/i18n"
	"github.com/guttosm/shiprate-service/internal/middleware"
)

// envelopePool recycles response envelopes on the hot rates path. Gin
// serializes synchronously, so an envelope can go back right after c.JSON.
type envelopePool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

func newEnvelopePool[T any](reset func(*T)) *envelopePool[T] {
	return &envelopePool[T]{
		pool:  sync.Pool{New: func() interface{} { return new(T) }},
		reset: reset,
	}
}

func (p *envelopePool[T]) get() *T {
	if v, ok := p.pool.Get().(*T); ok {
		return v
	}
	return new(T)
}

func (p *envelopePool[T]) put(v *T) {
	p.reset(v)
	p.pool.Put(v)
}

var (
	successEnvelopes = newEnvelopePool(func(r *dto.SuccessResponse) { *r = dto.SuccessResponse{} })
	errorEnvelopes   = newEnvelopePool(func(r *dto.ErrorResponse) { *r = dto.ErrorResponse{} })
)

// ResponseBuilder writes the standard success and error envelopes.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder wraps c.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success writes data inside the success envelope.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := successEnvelopes.get()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	b.c.JSON(statusCode, resp)
	successEnvelopes.put(resp)
}

// SuccessOK is Success with 200.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// Error aborts with the translation of messageKey in the caller's language.
// err, when set, is attached to the context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithDetails(statusCode, messageKey, nil, err)
}

// ErrorWithDetails is Error plus per-field details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, details map[string]string, err error) {
	locale := i18n.GetLocale(b.c)

	resp := errorEnvelopes.get()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = i18n.GetTranslator().Translate(messageKey, locale)
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.Header("Content-Language", locale)
	b.c.AbortWithStatusJSON(statusCode, resp)
	errorEnvelopes.put(resp)
}

// Validator is implemented by requests that can check themselves.
type Validator interface {
	Validate() error
}

// ErrMalformedBody wraps JSON binding failures so callers can tell them apart
// from validation failures.
var ErrMalformedBody = errors.New("malformed request body")

// BuildRequest binds the JSON body into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, errors.Join(ErrMalformedBody, err)
	}
	return &req, nil
}

// BuildRequestAndValidate binds the JSON body and validates it when T
// implements Validator.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if validator, ok := any(req).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}
