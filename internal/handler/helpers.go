package handler

import (
	"errors"
	"net/http"
	"reflect"

	"salesdash/internal/apierror"
	"salesdash/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindQuery binds the query string and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid query: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeServiceError maps service errors onto HTTP statuses without leaking
// internals: missing data is the caller's problem, everything else is ours.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoSalesData), errors.Is(err, service.ErrNoInventoryData):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrInvalidUpload):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
	}
}
