package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func serve(mw echo.MiddlewareFunc, names []string, values []string) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	reached := false
	_ = mw(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})(c)

	return rec, reached
}

func TestMandateChromosomeParameter(t *testing.T) {
	for _, chrom := range []string{"1", "22", "X", "Y", "M"} {
		rec, reached := serve(MandateChromosomeParameter, []string{"chromosome"}, []string{chrom})
		assert.True(t, reached, chrom)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	for _, chrom := range []string{"", "0", "23", "x", "MT"} {
		rec, reached := serve(MandateChromosomeParameter, []string{"chromosome"}, []string{chrom})
		assert.False(t, reached, chrom)
		assert.Equal(t, http.StatusBadRequest, rec.Code, chrom)
	}
}

func TestMandateCategoryParameter(t *testing.T) {
	rec, reached := serve(MandateCategoryParameter, []string{"category"}, []string{"ssm_with_sigs"})
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, reached = serve(MandateCategoryParameter, []string{"category"}, []string{"ssm_w_sigs"})
	assert.False(t, reached)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMandateProjectIdParameter(t *testing.T) {
	rec, reached := serve(MandateProjectIdParameter, []string{"projectId"}, []string{"ABC-123-XYZ"})
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, id := range []string{"", "abc-123-XYZ", "ABC123-XYZ", "ABC-123-XY9"} {
		rec, reached := serve(MandateProjectIdParameter, []string{"projectId"}, []string{id})
		assert.False(t, reached, id)
		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
	}
}
