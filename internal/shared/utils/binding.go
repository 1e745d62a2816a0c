package utils

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/opsportal/opsportal/internal/shared/errors"
)

// BindBody decodes a JSON, urlencoded or multipart body into obj, choosing the decoder
// from Content-Type. Binding failures become validation errors.
func BindBody(c *gin.Context, obj any) error {
	if err := c.ShouldBind(obj); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return errors.NewValidationError("request body too large")
		}
		return errors.NewValidationError("invalid request body", err.Error())
	}
	return nil
}

// IsFormBody reports whether the request body is urlencoded or multipart.
func IsFormBody(c *gin.Context) bool {
	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		return true
	}
	return false
}

// FormIDList returns the IDList for field when the body is form encoded, and fallback
// otherwise. Repeated keys and "field[]" keys are both accepted.
func FormIDList(c *gin.Context, field string, fallback IDList) IDList {
	if !IsFormBody(c) {
		return fallback
	}
	values, ok := c.GetPostFormArray(field)
	if !ok {
		values, ok = c.GetPostFormArray(field + "[]")
	}
	return ParseIDForm(values, ok)
}

// QueryUint parses an optional positive id from the query string.
func QueryUint(c *gin.Context, key string) (*uint, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	ids := ParseIDTokens([]string{raw})
	if len(ids) != 1 {
		return nil, errors.NewValidationError("invalid " + key)
	}
	return &ids[0], nil
}
