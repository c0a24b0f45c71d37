package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"asset_maintenance/internal/models"
	"asset_maintenance/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	errInvalidBodyPref = "invalid body: "
	errValidation      = "validation failed"
	errInternal        = "internal server error"
)

var tagNamesOnce sync.Once

// registerValidatorTagNames makes validator report json/form names instead
// of Go field names.
func registerValidatorTagNames() {
	tagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		if fe.Kind() == reflect.Slice {
			return "must contain at most " + fe.Param() + " items"
		}
		return "must be at most " + fe.Param() + " characters"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must contain at least " + fe.Param() + " items"
		}
		return "must be at least " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "datetime":
		return "must be a YYYY-MM-DD date"
	default:
		return "is invalid"
	}
}

// bindingFields converts validator errors into one message per field.
func bindingFields(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if _, ok := fields[name]; !ok {
			fields[name] = fieldMessage(fe)
		}
	}
	return fields, true
}

func (h *Handler) badRequest(c *gin.Context, logKey string, err error) {
	if h.log != nil {
		h.log.Infow(logKey, "err", err)
	}
	if fields, ok := bindingFields(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errValidation, "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any, logKey string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.badRequest(c, logKey, err)
		return false
	}
	return true
}

// statusFor maps service errors to HTTP codes.
func statusFor(err error) int {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case service.IsNotFound(err), errors.Is(err, service.ErrNoPendingTransition):
		return http.StatusNotFound
	case errors.Is(err, service.ErrTransitionPending), errors.Is(err, service.ErrCommitInFlight):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes the JSON error body. Internal errors are
// logged at error level and never leak their text.
func (h *Handler) respondError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	code := statusFor(err)
	if h.log != nil {
		fields := append([]interface{}{"err", err, "status", code}, kv...)
		if code >= http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Infow(logKey, fields...)
		}
	}

	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(code, gin.H{"error": errValidation, "fields": verr.Fields})
	case code == http.StatusInternalServerError:
		c.JSON(code, gin.H{"error": errInternal})
	default:
		c.JSON(code, gin.H{"error": err.Error()})
	}
}

func fieldError(field, msg string) error {
	v := models.ValidationError{}
	v.Add(field, msg)
	return &v
}
