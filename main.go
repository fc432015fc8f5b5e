package main

import (
	"explosig/api/contexts"
	gam "explosig/api/middleware"
	"explosig/api/models"
	serviceInfo "explosig/api/models/constants/service-info"
	"explosig/api/models/reference"
	layoutMvc "explosig/api/mvc/layout"
	referenceMvc "explosig/api/mvc/reference"
	serviceInfoMvc "explosig/api/mvc/service-info"
	"explosig/api/services/layout"
	"time"

	"fmt"
	"net/http"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n"+
		"\tSemantic Version : %s \n\n"+

		"\tData Root : %s \n"+
		"\tLayout Audit Enabled : %t \n"+
		"\tLayout Audit Time (UTC) : %s \n\n"+

		"Running on Port : %s\n",

		cfg.Debug,
		cfg.SemVer,
		cfg.Api.DataRoot,
		cfg.Api.AuditEnabled,
		cfg.Api.AuditAt,
		cfg.Api.Port)
	// --

	// Instantiate Server
	e := echo.New()

	// Service Singletons
	ref := reference.Default()
	ls := layout.NewLayoutService(&cfg, ref)

	// Configure Server
	e.Use(middleware.Recover())
	if cfg.Debug {
		e.Use(middleware.Logger())
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET},
	}))

	// -- Override handlers with "custom Explosig" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.ExplosigContext{
				Context:       c,
				Config:        &cfg,
				Reference:     ref,
				LayoutService: ls,
			}
			return h(cc)
		}
	})

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		fmt.Printf("[%s] - Root hit!\n", time.Now())
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Reference
	e.GET("/reference", referenceMvc.GetReference)
	e.GET("/reference/chromosomes", referenceMvc.GetChromosomes)
	e.GET("/reference/chromosomes/:chromosome", referenceMvc.GetChromosome,
		// middleware
		gam.MandateChromosomeParameter)
	e.GET("/reference/directories", referenceMvc.GetDirectories)
	e.GET("/reference/directories/:category", referenceMvc.GetDirectory,
		// middleware
		gam.MandateCategoryParameter)
	e.GET("/reference/filenames", referenceMvc.GetFilenames)
	e.GET("/reference/validate", referenceMvc.Validate)
	e.GET("/reference/projects/:projectId/files/:category", referenceMvc.GetProjectFile,
		// middleware
		gam.MandateProjectIdParameter,
		gam.MandateCategoryParameter)

	// -- Layout
	e.GET("/layout/audit", layoutMvc.GetLatestAudit)
	e.GET("/layout/audit/run", layoutMvc.RunAudit)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
