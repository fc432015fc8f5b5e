package common

import (
	"explosig/api/contexts"
	"explosig/api/models"
	"explosig/api/models/reference"
	"explosig/api/services/layout"
	"fmt"
	"net/http/httptest"
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/Jeffail/gabs"
	"github.com/labstack/echo"
	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

func InitConfig() *models.Config {
	var cfg models.Config

	// get this file's path
	_, filename, _, _ := runtime.Caller(0)
	folderpath := path.Dir(filename)

	// retrieve common's test.config
	f, err := os.Open(fmt.Sprintf("%s/test.config.yml", folderpath))
	if err != nil {
		processError(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&cfg)
	if err != nil {
		processError(err)
	}

	return &cfg
}

func processError(err error) {
	fmt.Println(err)
	os.Exit(2)
}

// SetUpEcho builds a request context the way main.go's context override
// does. params stand in for the router's path parameters.
func SetUpEcho(cfg *models.Config, ls *layout.LayoutService, method string, target string, params map[string]string) (*contexts.ExplosigContext, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	gc := &contexts.ExplosigContext{
		Context:       c,
		Config:        cfg,
		Reference:     reference.Default(),
		LayoutService: ls,
	}
	return gc, rec
}

func GetJsonBody(t *testing.T, rec *httptest.ResponseRecorder) *gabs.Container {
	jsonParsed, err := gabs.ParseJSON(rec.Body.Bytes())
	require.NoError(t, err, rec.Body.String())
	return jsonParsed
}

// DecodeInto maps a parsed JSON fragment onto a dto.
func DecodeInto(t *testing.T, data interface{}, out interface{}) {
	require.NoError(t, mapstructure.Decode(data, out))
}
