package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/entity"
	"github.com/sunshineittechnologies/sunshine-blinds-service/catalog-service/internal/app/catalog/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	msgInvalidBody   = "Invalid request body"
	msgBodyNotObject = "request body must be a JSON object"
)

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, entity.APIResponse{Success: true, Data: data})
}

func respondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, entity.APIResponse{Success: true, Message: message, Data: data})
}

// respondError maps a service error to its status code. Client errors carry
// the service message; anything else gets the generic fallback plus the cause.
func respondError(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)

	switch service.KindOf(err) {
	case service.KindValidation, service.KindDuplicate, service.KindReference:
		c.JSON(http.StatusBadRequest, entity.APIResponse{Success: false, Message: err.Error()})
	case service.KindNotFound:
		c.JSON(http.StatusNotFound, entity.APIResponse{Success: false, Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, entity.APIResponse{
			Success: false,
			Message: fallback,
			Error:   err.Error(),
		})
	}
}

// bindRules says how a request body is checked before it reaches the service.
// A field listed in required that is absent or falsy (null, "", 0, false)
// outranks a wrong JSON type elsewhere in the body.
type bindRules struct {
	required    []string
	missingMsg  string
	typeMessage func(field string) string
}

type requestValidator struct {
	validate *validator.Validate
}

// bindJSON decodes the body into req and applies size limits. An empty body
// decodes as {} so presence checks in the service produce the message.
func (v *requestValidator) bindJSON(c *gin.Context, req any, rules bindRules) error {
	if err := c.ShouldBindBodyWithJSON(req); err != nil && !errors.Is(err, io.EOF) {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return service.NewValidationError(msgInvalidBody)
		}
		if !allTruthy(bodyFields(c), rules.required...) {
			return service.NewValidationError(rules.missingMsg)
		}
		return service.NewValidationError(rules.typeMessage(typeErr.Field))
	}

	if err := v.validate.Struct(req); err != nil {
		return service.NewValidationError(formatValidationError(err))
	}
	return nil
}

// bodyFields returns the top-level members of the cached request body, or nil
// when the body is not a JSON object.
func bodyFields(c *gin.Context) map[string]any {
	body, _ := c.Get(gin.BodyBytesKey)
	raw, _ := body.([]byte)

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	return fields
}

func allTruthy(fields map[string]any, names ...string) bool {
	for _, name := range names {
		if !truthy(fields[name]) {
			return false
		}
	}
	return true
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "Validation failed"
	}

	fe := validationErrors[0]
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at most %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "excludesall":
		return fmt.Sprintf("%s must not contain path separators", field)
	default:
		return fmt.Sprintf("%s must satisfy %s", field, fe.Tag())
	}
}
