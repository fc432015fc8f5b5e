package reference

import (
	"explosig/api/models/dtos"
	common "explosig/api/tests/common"
	"net/http"
	"testing"

	. "github.com/ahmetb/go-linq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

func TestGetChromosomes(t *testing.T) {
	cfg := common.InitConfig()

	gc, rec := common.SetUpEcho(cfg, nil, http.MethodGet, "/reference/chromosomes", nil)
	require.NoError(t, GetChromosomes(gc))
	assert.Equal(t, http.StatusOK, rec.Code)

	children, err := common.GetJsonBody(t, rec).Children()
	require.NoError(t, err)
	require.Len(t, children, 25)

	var results []dtos.ChromosomeDto
	for _, child := range children {
		var dto dtos.ChromosomeDto
		common.DecodeInto(t, child.Data(), &dto)
		results = append(results, dto)
	}

	assert.Equal(t, dtos.ChromosomeDto{Id: "1", Length: 249250621}, results[0])
	assert.Equal(t, dtos.ChromosomeDto{Id: "M", Length: 16571}, results[24])

	// every length is positive
	assert.True(t, From(results).AllT(func(c dtos.ChromosomeDto) bool { return c.Length > 0 }))
}

func TestGetChromosome(t *testing.T) {
	cfg := common.InitConfig()

	t.Run("should return the length of a canonical chromosome", func(t *testing.T) {
		gc, rec := common.SetUpEcho(cfg, nil, http.MethodGet, "/reference/chromosomes/X", map[string]string{"chromosome": "X"})
		require.NoError(t, GetChromosome(gc))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := common.GetJsonBody(t, rec)
		assert.Equal(t, "X", body.Path("id").Data().(string))
		assert.Equal(t, float64(155270560), body.Path("length").Data().(float64))
	})

	t.Run("should return 404 for unknown chromosomes", func(t *testing.T) {
		gc, rec := common.SetUpEcho(cfg, nil, http.MethodGet, "/reference/chromosomes/MT", map[string]string{"chromosome": "MT"})
		require.NoError(t, GetChromosome(gc))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, float64(404), common.GetJsonBody(t, rec).Path("code").Data().(float64))
	})
}

func TestGetDirectory(t *testing.T) {
	cfg := common.InitConfig()

	gc, rec := common.SetUpEcho(cfg, nil, http.MethodGet, "/reference/directories/signatures", map[string]string{"category": "signatures"})
	require.NoError(t, GetDirectory(gc))
	assert.Equal(t, http.StatusOK, rec.Code)

	var dto dtos.CategoryDirectoryDto
	common.DecodeInto(t, common.GetJsonBody(t, rec).Data(), &dto)
	assert.Equal(t, "data/processed/sigs", dto.Path)

	gc, rec = common.SetUpEcho(cfg, nil, http.MethodGet, "/reference/directories/sigs", map[string]string{"category": "sigs"})
	require.NoError(t, GetDirectory(gc))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDirectories(t *testing.T) {
	cfg := common.InitConfig()

	gc, rec := common.SetUpEcho(cfg, nil, http.MethodGet, "/reference/directories", nil)
	require.NoError(t, GetDirectories(gc))

	body := common.GetJsonBody(t, rec)
	assert.Equal(t, "data/processed/ssm_w_sigs", body.Path("ssm_with_sigs").Data().(string))
	assert.Equal(t, "data/processed/donor_w_sigs", body.Path("donor_with_sigs").Data().(string))
}

func TestGetFilenames(t *testing.T) {
	cfg := common.InitConfig()

	gc, rec := common.SetUpEcho(cfg, nil, http.MethodGet, "/reference/filenames", nil)
	require.NoError(t, GetFilenames(gc))

	var dto dtos.FilenamesDto
	common.DecodeInto(t, common.GetJsonBody(t, rec).Data(), &dto)
	assert.Equal(t, dtos.FilenamesDto{
		SignatureManifest:       "signatures.tsv",
		ActiveSignatureManifest: "active_binary.tsv",
		SsmFilePrefix:           "ssm",
		DonorFilePrefix:         "donor",
	}, dto)
}

func TestGetReferenceAsYaml(t *testing.T) {
	cfg := common.InitConfig()

	gc, rec := common.SetUpEcho(cfg, nil, http.MethodGet, "/reference?format=yaml", nil)
	require.NoError(t, GetReference(gc))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Assembly           string               `yaml:"assembly"`
		ProcessedDirectory string               `yaml:"processedDirectory"`
		Chromosomes        []dtos.ChromosomeDto `yaml:"chromosomes"`
	}
	require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "GRCh37", body.Assembly)
	assert.Equal(t, "data/processed", body.ProcessedDirectory)
	assert.Len(t, body.Chromosomes, 25)
}

func TestValidate(t *testing.T) {
	cfg := common.InitConfig()

	t.Run("should report both values", func(t *testing.T) {
		gc, rec := common.SetUpEcho(cfg, nil, http.MethodGet, "/reference/validate?chromosome=23&projectId=ABC-123-XYZ", nil)
		require.NoError(t, Validate(gc))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := common.GetJsonBody(t, rec)
		assert.False(t, body.Path("chromosomeValid").Data().(bool))
		assert.True(t, body.Path("projectIdValid").Data().(bool))
	})

	t.Run("should treat an empty value as invalid", func(t *testing.T) {
		gc, rec := common.SetUpEcho(cfg, nil, http.MethodGet, "/reference/validate?chromosome=", nil)
		require.NoError(t, Validate(gc))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := common.GetJsonBody(t, rec)
		assert.False(t, body.Path("chromosomeValid").Data().(bool))
		assert.False(t, body.Exists("projectIdValid"))
	})

	t.Run("should require at least one value", func(t *testing.T) {
		gc, rec := common.SetUpEcho(cfg, nil, http.MethodGet, "/reference/validate", nil)
		require.NoError(t, Validate(gc))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetProjectFile(t *testing.T) {
	cfg := common.InitConfig()

	gc, rec := common.SetUpEcho(cfg, nil, http.MethodGet, "/reference/projects/ABC-123-XYZ/files/donor",
		map[string]string{"projectId": "ABC-123-XYZ", "category": "donor"})
	require.NoError(t, GetProjectFile(gc))
	assert.Equal(t, http.StatusOK, rec.Code)

	var dto dtos.ProjectFileDto
	common.DecodeInto(t, common.GetJsonBody(t, rec).Data(), &dto)
	assert.Equal(t, "data/processed/donor/donor_ABC-123-XYZ.tsv", dto.Path)

	gc, rec = common.SetUpEcho(cfg, nil, http.MethodGet, "/reference/projects/ABC-123-XYZ/files/signatures",
		map[string]string{"projectId": "ABC-123-XYZ", "category": "signatures"})
	require.NoError(t, GetProjectFile(gc))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
