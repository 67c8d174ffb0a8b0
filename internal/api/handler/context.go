package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/moodmenu/recipe-api/internal/core/domain"
)

// bindAndValidate decodes the request body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	return c.Validate(req)
}
