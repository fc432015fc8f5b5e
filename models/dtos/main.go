package dtos

import (
	"explosig/api/models/constants"
	"time"

	"github.com/google/uuid"
)

type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}
type GeneralError struct {
	Message string `json:"message"`
}

// -- Reference

type ChromosomeDto struct {
	Id     string `json:"id" yaml:"id" mapstructure:"id"`
	Length int    `json:"length" yaml:"length" mapstructure:"length"`
}

type CategoryDirectoryDto struct {
	Category constants.Category `json:"category" mapstructure:"category"`
	Path     string             `json:"path" mapstructure:"path"`
}

type FilenamesDto struct {
	SignatureManifest       string `json:"signatureManifest" yaml:"signatureManifest" mapstructure:"signatureManifest"`
	ActiveSignatureManifest string `json:"activeSignatureManifest" yaml:"activeSignatureManifest" mapstructure:"activeSignatureManifest"`
	SsmFilePrefix           string `json:"ssmFilePrefix" yaml:"ssmFilePrefix" mapstructure:"ssmFilePrefix"`
	DonorFilePrefix         string `json:"donorFilePrefix" yaml:"donorFilePrefix" mapstructure:"donorFilePrefix"`
}

type ReferenceDto struct {
	Assembly           string                        `json:"assembly" yaml:"assembly"`
	DataDirectory      string                        `json:"dataDirectory" yaml:"dataDirectory"`
	ProcessedDirectory string                        `json:"processedDirectory" yaml:"processedDirectory"`
	Directories        map[constants.Category]string `json:"directories" yaml:"directories"`
	Filenames          FilenamesDto                  `json:"filenames" yaml:"filenames"`
	Chromosomes        []ChromosomeDto               `json:"chromosomes" yaml:"chromosomes"`
}

type ValidationDto struct {
	Chromosome      *string `json:"chromosome,omitempty"`
	ChromosomeValid *bool   `json:"chromosomeValid,omitempty"`
	ProjectId       *string `json:"projectId,omitempty"`
	ProjectIdValid  *bool   `json:"projectIdValid,omitempty"`
}

type ProjectFileDto struct {
	ProjectId string             `json:"projectId" mapstructure:"projectId"`
	Category  constants.Category `json:"category" mapstructure:"category"`
	Path      string             `json:"path" mapstructure:"path"`
}

// -- Layout audit

type LayoutAuditReport struct {
	Id          uuid.UUID          `json:"id"`
	Timestamp   time.Time          `json:"timestamp"`
	DataRoot    string             `json:"dataRoot"`
	Directories []LayoutAuditEntry `json:"directories"`
	Manifests   []LayoutAuditEntry `json:"manifests"`
	Complete    bool               `json:"complete"`
}

type LayoutAuditEntry struct {
	Category constants.Category `json:"category,omitempty"`
	Path     string             `json:"path"`
	Present  bool               `json:"present"`
	Message  string             `json:"message,omitempty"`
}
