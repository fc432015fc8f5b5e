package middleware

import (
	"explosig/api/models/constants/project"
	errorsDto "explosig/api/models/dtos/errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo"
)

/*
	Echo middleware to ensure a valid `projectId` path parameter was provided
*/
func MandateProjectIdParameter(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		projectId := c.Param("projectId")
		if len(projectId) == 0 {
			return c.JSON(http.StatusBadRequest, errorsDto.CreateSimpleBadRequest("Missing project id"))
		}

		if !project.IsValidProjectId(projectId) {
			fmt.Printf("Invalid project id %s\n", projectId)

			return c.JSON(http.StatusBadRequest, errorsDto.CreateSimpleBadRequest(
				fmt.Sprintf("Invalid project id %s - expected <CODE>-<CODE>-<LETTERS>", projectId)))
		}

		return next(c)
	}
}
