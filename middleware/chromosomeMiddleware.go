package middleware

import (
	"explosig/api/models/constants/chromosome"
	errorsDto "explosig/api/models/dtos/errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo"
)

/*
	Echo middleware to ensure a valid `chromosome` path parameter was provided
*/
func MandateChromosomeParameter(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		chrom := c.Param("chromosome")
		if len(chrom) == 0 {
			return c.JSON(http.StatusBadRequest, errorsDto.CreateSimpleBadRequest("Missing 'chromosome' parameter!"))
		}

		if !chromosome.IsValidHumanChromosome(chrom) {
			return c.JSON(http.StatusBadRequest, errorsDto.CreateSimpleBadRequest(
				fmt.Sprintf("Invalid chromosome '%s' - expected one of 1-22, X, Y or M", chrom)))
		}

		return next(c)
	}
}
