package layout

import (
	"net/http"

	"explosig/api/contexts"
	errorsDto "explosig/api/models/dtos/errors"

	"github.com/labstack/echo"
)

func GetLatestAudit(c echo.Context) error {
	ls := c.(*contexts.ExplosigContext).LayoutService

	report, ok := ls.LatestReport()
	if !ok {
		return c.JSON(http.StatusNotFound, errorsDto.CreateSimpleNotFound("No layout audit has run yet"))
	}

	return c.JSON(http.StatusOK, report)
}

func RunAudit(c echo.Context) error {
	ls := c.(*contexts.ExplosigContext).LayoutService

	report, err := ls.Audit(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorsDto.CreateSimpleInternalServerError(err.Error()))
	}

	return c.JSON(http.StatusOK, report)
}
