package layout

import (
	"explosig/api/models/constants"
	c "explosig/api/models/constants/category"
)

/*
	Processed-data tree shared by every reader
	and writer of signature, SSM and donor files:

	data/processed/{sigs,ssm,ssm_w_sigs,donor,donor_w_sigs}/
*/
const (
	DataDirectory      = "data"
	ProcessedDirectory = DataDirectory + "/processed"

	signaturesDirectoryName    = "sigs"
	ssmDirectoryName           = "ssm"
	ssmWithSigsDirectoryName   = "ssm_w_sigs"
	donorDirectoryName         = "donor"
	donorWithSigsDirectoryName = "donor_w_sigs"
)

const (
	SignatureManifestFilename       = "signatures.tsv"
	ActiveSignatureManifestFilename = "active_binary.tsv"

	SsmFilePrefix   = "ssm"
	DonorFilePrefix = "donor"

	// per-project files are tab-separated
	FileExtension = ".tsv"
)

// DirectoryName returns the on-disk name of a category's
// subdirectory of ProcessedDirectory.
func DirectoryName(category constants.Category) (string, bool) {
	switch category {
	case c.Signatures:
		return signaturesDirectoryName, true
	case c.Ssm:
		return ssmDirectoryName, true
	case c.SsmWithSigs:
		return ssmWithSigsDirectoryName, true
	case c.Donor:
		return donorDirectoryName, true
	case c.DonorWithSigs:
		return donorWithSigsDirectoryName, true
	default:
		return "", false
	}
}

// FilePrefix returns the prefix of the per-project files held in a
// category's directory. Signatures only hold the two manifests.
func FilePrefix(category constants.Category) (string, bool) {
	switch category {
	case c.Ssm, c.SsmWithSigs:
		return SsmFilePrefix, true
	case c.Donor, c.DonorWithSigs:
		return DonorFilePrefix, true
	default:
		return "", false
	}
}
