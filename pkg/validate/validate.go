package validate

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ValidationErrorResponse is the body of every 400 the validator produces.
type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		resp := ValidationErrorResponse{Message: "invalid request"}
		resp.Errors.AdditionalProperties = err.Error()
		return echo.NewHTTPError(http.StatusBadRequest, resp)
	}
	return nil
}
