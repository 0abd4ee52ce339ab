package handler

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"inventario/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0 work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Respuesta{Mensaje: "JSON inválido", Detalles: err.Error()})
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make([]string, 0)
		for _, fe := range err.(validator.ValidationErrors) {
			fields = append(fields, fe.Field()+": "+fe.Tag())
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.Respuesta{
			Mensaje:  "Error de validación",
			Detalles: strings.Join(fields, "; "),
		})
		return false
	}
	return true
}

// respondError translates service errors into the canonical envelope.
func respondError(c *gin.Context, err error) {
	c.JSON(apierror.Status(err), apierror.Body(err))
}

// paramID parses the :id path segment. Writes a 400 and returns false on junk.
func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, apierror.Respuesta{Mensaje: "ID inválido"})
		return 0, false
	}
	return id, true
}
