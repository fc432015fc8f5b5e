// Package reference holds the immutable reference table shared by every
// component of the processed-data pipeline.
package reference

import (
	"errors"
	"fmt"
	"sync"

	"explosig/api/models/constants"
	c "explosig/api/models/constants/category"
	"explosig/api/models/constants/chromosome"
	"explosig/api/models/constants/layout"
	"explosig/api/models/constants/project"

	"github.com/samber/lo"
)

var (
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownChromosome = errors.New("unknown chromosome")
	ErrInvalidProjectId  = errors.New("invalid project id")
)

// Table is a read-only view over the layout, chromosome and project-id
// constants. Accessors return copies so callers can never mutate it.
type Table struct {
	directories map[constants.Category]string
	chromosomes []string
}

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// Default returns the process-wide table, built on first use.
func Default() *Table {
	defaultTableOnce.Do(func() {
		defaultTable = New()
	})
	return defaultTable
}

func New() *Table {
	directories := lo.Associate(c.All(), func(category constants.Category) (constants.Category, string) {
		name, _ := layout.DirectoryName(category)
		return category, layout.ProcessedDirectory + "/" + name
	})

	return &Table{
		directories: directories,
		chromosomes: chromosome.ValidListOfHumanChromosomes(),
	}
}

func (t *Table) BaseDataDirectory() string {
	return layout.DataDirectory
}

func (t *Table) ProcessedDirectory() string {
	return layout.ProcessedDirectory
}

// CategoryDirectory returns data/processed/<name> for one of the five
// known categories.
func (t *Table) CategoryDirectory(category constants.Category) (string, error) {
	dir, ok := t.directories[category]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return dir, nil
}

// Directories returns every category directory keyed by category.
func (t *Table) Directories() map[constants.Category]string {
	directories := make(map[constants.Category]string, len(t.directories))
	for k, v := range t.directories {
		directories[k] = v
	}
	return directories
}

func (t *Table) SignatureManifestFilename() string {
	return layout.SignatureManifestFilename
}

func (t *Table) ActiveSignatureManifestFilename() string {
	return layout.ActiveSignatureManifestFilename
}

func (t *Table) SsmFilePrefix() string {
	return layout.SsmFilePrefix
}

func (t *Table) DonorFilePrefix() string {
	return layout.DonorFilePrefix
}

// ChromosomeLength returns the GRCh37 length in base pairs.
func (t *Table) ChromosomeLength(id string) (int, error) {
	length, ok := chromosome.Length(id)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownChromosome, id)
	}
	return length, nil
}

// Chromosomes returns the canonical ids in order 1..22, X, Y, M.
func (t *Table) Chromosomes() []string {
	return append([]string(nil), t.chromosomes...)
}

func (t *Table) IsValidChromosomeName(s string) bool {
	return chromosome.IsValidHumanChromosome(s)
}

func (t *Table) IsValidProjectId(s string) bool {
	return project.IsValidProjectId(s)
}

// ProjectFile returns the path of a project's file within an ssm or
// donor category directory, e.g. data/processed/ssm/ssm_ABC-123-XYZ.tsv
func (t *Table) ProjectFile(category constants.Category, projectId string) (string, error) {
	if !project.IsValidProjectId(projectId) {
		return "", fmt.Errorf("%w: %q", ErrInvalidProjectId, projectId)
	}

	dir, err := t.CategoryDirectory(category)
	if err != nil {
		return "", err
	}

	prefix, ok := layout.FilePrefix(category)
	if !ok {
		return "", fmt.Errorf("%w: %q has no per-project files", ErrUnknownCategory, category)
	}

	return fmt.Sprintf("%s/%s_%s%s", dir, prefix, projectId, layout.FileExtension), nil
}
