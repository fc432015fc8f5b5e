package reference

import (
	"errors"
	"fmt"
	"net/http"

	"explosig/api/contexts"
	"explosig/api/models/constants/category"
	"explosig/api/models/constants/chromosome"
	"explosig/api/models/dtos"
	errorsDto "explosig/api/models/dtos/errors"
	"explosig/api/models/reference"

	linq "github.com/ahmetb/go-linq"
	"github.com/labstack/echo"
	yaml "gopkg.in/yaml.v2"
)

func GetReference(c echo.Context) error {
	ref := c.(*contexts.ExplosigContext).Reference

	body := dtos.ReferenceDto{
		Assembly:           chromosome.ReferenceAssembly,
		DataDirectory:      ref.BaseDataDirectory(),
		ProcessedDirectory: ref.ProcessedDirectory(),
		Directories:        ref.Directories(),
		Filenames:          filenames(ref),
		Chromosomes:        chromosomes(ref),
	}

	if c.QueryParam("format") == "yaml" {
		out, err := yaml.Marshal(body)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorsDto.CreateSimpleInternalServerError(err.Error()))
		}
		return c.Blob(http.StatusOK, "application/x-yaml", out)
	}

	return c.JSON(http.StatusOK, body)
}

func GetChromosomes(c echo.Context) error {
	return c.JSON(http.StatusOK, chromosomes(c.(*contexts.ExplosigContext).Reference))
}

func GetChromosome(c echo.Context) error {
	ref := c.(*contexts.ExplosigContext).Reference
	id := c.Param("chromosome")

	length, err := ref.ChromosomeLength(id)
	if err != nil {
		return respondWithError(c, err)
	}

	return c.JSON(http.StatusOK, dtos.ChromosomeDto{Id: id, Length: length})
}

func GetDirectories(c echo.Context) error {
	return c.JSON(http.StatusOK, c.(*contexts.ExplosigContext).Reference.Directories())
}

func GetDirectory(c echo.Context) error {
	ref := c.(*contexts.ExplosigContext).Reference
	cat := category.CastToCategory(c.Param("category"))

	dir, err := ref.CategoryDirectory(cat)
	if err != nil {
		return respondWithError(c, err)
	}

	return c.JSON(http.StatusOK, dtos.CategoryDirectoryDto{Category: cat, Path: dir})
}

func GetFilenames(c echo.Context) error {
	return c.JSON(http.StatusOK, filenames(c.(*contexts.ExplosigContext).Reference))
}

func GetProjectFile(c echo.Context) error {
	ref := c.(*contexts.ExplosigContext).Reference
	projectId := c.Param("projectId")
	cat := category.CastToCategory(c.Param("category"))

	path, err := ref.ProjectFile(cat, projectId)
	if err != nil {
		return respondWithError(c, err)
	}

	return c.JSON(http.StatusOK, dtos.ProjectFileDto{
		ProjectId: projectId,
		Category:  cat,
		Path:      path,
	})
}

// Validate reports whether the `chromosome` and/or `projectId`
// query parameters are canonical. Invalid values are not errors.
func Validate(c echo.Context) error {
	ref := c.(*contexts.ExplosigContext).Reference
	params := c.QueryParams()

	var result dtos.ValidationDto
	if _, ok := params["chromosome"]; ok {
		chrom := c.QueryParam("chromosome")
		valid := ref.IsValidChromosomeName(chrom)
		result.Chromosome, result.ChromosomeValid = &chrom, &valid
	}
	if _, ok := params["projectId"]; ok {
		projectId := c.QueryParam("projectId")
		valid := ref.IsValidProjectId(projectId)
		result.ProjectId, result.ProjectIdValid = &projectId, &valid
	}

	if result.Chromosome == nil && result.ProjectId == nil {
		return c.JSON(http.StatusBadRequest, errorsDto.CreateSimpleBadRequest("Provide a 'chromosome' and/or 'projectId' query parameter"))
	}

	return c.JSON(http.StatusOK, result)
}

// - helpers
func chromosomes(ref *reference.Table) []dtos.ChromosomeDto {
	var results []dtos.ChromosomeDto
	linq.From(ref.Chromosomes()).SelectT(func(id string) dtos.ChromosomeDto {
		length, _ := ref.ChromosomeLength(id)
		return dtos.ChromosomeDto{Id: id, Length: length}
	}).ToSlice(&results)
	return results
}

func filenames(ref *reference.Table) dtos.FilenamesDto {
	return dtos.FilenamesDto{
		SignatureManifest:       ref.SignatureManifestFilename(),
		ActiveSignatureManifest: ref.ActiveSignatureManifestFilename(),
		SsmFilePrefix:           ref.SsmFilePrefix(),
		DonorFilePrefix:         ref.DonorFilePrefix(),
	}
}

func respondWithError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, reference.ErrUnknownCategory), errors.Is(err, reference.ErrUnknownChromosome):
		return c.JSON(http.StatusNotFound, errorsDto.CreateSimpleNotFound(err.Error()))
	case errors.Is(err, reference.ErrInvalidProjectId):
		return c.JSON(http.StatusBadRequest, errorsDto.CreateSimpleBadRequest(err.Error()))
	default:
		fmt.Printf("Unexpected reference error : %v\n", err)
		return c.JSON(http.StatusInternalServerError, errorsDto.CreateSimpleInternalServerError(err.Error()))
	}
}
