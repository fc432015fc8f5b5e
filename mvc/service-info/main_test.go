package serviceInfo

import (
	serviceInfo "explosig/api/models/constants/service-info"
	common "explosig/api/tests/common"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetServiceInfo(t *testing.T) {
	cfg := common.InitConfig()

	t.Run("should return 200 status ok and service info", func(t *testing.T) {
		//set up
		gc, rec := common.SetUpEcho(cfg, nil, http.MethodGet, "/service-info", nil)

		// perform
		GetServiceInfo(gc)

		// verify response status
		assert.Equal(t, http.StatusOK, rec.Code)

		// verify body
		json := common.GetJsonBody(t, rec)

		assert.Equal(t, string(serviceInfo.SERVICE_ID), json.Path("id").Data().(string))
		assert.Equal(t, string(serviceInfo.SERVICE_NAME), json.Path("name").Data().(string))
		assert.Equal(t, cfg.SemVer, json.Path("version").Data().(string))
		assert.Equal(t, string(serviceInfo.SERVICE_ARTIFACT), json.Path("type.artifact").Data().(string))
	})
}
