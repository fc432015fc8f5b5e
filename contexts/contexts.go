package contexts

import (
	"explosig/api/models"
	"explosig/api/models/reference"
	"explosig/api/services/layout"

	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  the reference table and other singletons
	ExplosigContext struct {
		echo.Context
		Config        *models.Config
		Reference     *reference.Table
		LayoutService *layout.LayoutService
	}
)
