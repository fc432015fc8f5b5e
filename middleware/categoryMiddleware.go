package middleware

import (
	"explosig/api/models/constants/category"
	errorsDto "explosig/api/models/dtos/errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo"
)

/*
	Echo middleware to ensure a known `category` path parameter was provided
*/
func MandateCategoryParameter(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cat := c.Param("category")
		if len(cat) == 0 || !category.IsKnown(cat) {
			// unknown categories are "not found" rather than malformed
			return c.JSON(http.StatusNotFound, errorsDto.CreateSimpleNotFound(
				fmt.Sprintf("Missing or unknown category '%s'", cat)))
		}

		return next(c)
	}
}
