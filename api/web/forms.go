package web

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jt0/varasto/gomerr"
)

// The name is validated by the store, after the numbers have been parsed.
type createForm struct {
	Name     string `form:"name"`
	Capacity string `form:"capacity"`
	Initial  string `form:"initial"`
}

type updateForm struct {
	Name string `form:"name" binding:"required"`
}

type amountForm struct {
	Amount string `form:"amount"`
}

func bind(c *gin.Context, form any) gomerr.Gomerr {
	if err := c.ShouldBind(form); err != nil {
		return bindingFailure(err)
	}
	return nil
}

// bindingFailure converts a binding error into the gomerr a handler would have produced for the same input. A
// failed 'required' rule becomes a MissingError for the field.
func bindingFailure(err error) gomerr.Gomerr {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return gomerr.MalformedValue("form", nil).Wrap(err)
	}

	for _, fe := range validationErrors {
		if fe.Tag() == "required" {
			return gomerr.Missing(strings.ToLower(fe.Field()), "form").Wrap(err)
		}
	}

	fe := validationErrors[0]
	return gomerr.InvalidValue(strings.ToLower(fe.Field()), fe.Value(), fe.Tag()).Wrap(err)
}

// parseAmount parses a numeric form value. An empty value counts as zero.
func parseAmount(name, value string) (float64, gomerr.Gomerr) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, gomerr.MalformedValue(name, value).Wrap(err)
	}
	return f, nil
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
