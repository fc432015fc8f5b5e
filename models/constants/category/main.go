package category

import (
	"explosig/api/models/constants"
	"strings"
)

const (
	Unknown constants.Category = "unknown"

	Signatures    constants.Category = "signatures"
	Ssm           constants.Category = "ssm"
	SsmWithSigs   constants.Category = "ssm_with_sigs"
	Donor         constants.Category = "donor"
	DonorWithSigs constants.Category = "donor_with_sigs"
)

// All returns the known categories in their fixed order.
func All() []constants.Category {
	return []constants.Category{
		Signatures,
		Ssm,
		SsmWithSigs,
		Donor,
		DonorWithSigs,
	}
}

func CastToCategory(text string) constants.Category {
	switch strings.ToLower(text) {
	case "signatures":
		return Signatures
	case "ssm":
		return Ssm
	case "ssm_with_sigs":
		return SsmWithSigs
	case "donor":
		return Donor
	case "donor_with_sigs":
		return DonorWithSigs
	default:
		return Unknown
	}
}

func IsKnown(text string) bool {
	// attempt to cast to a category and
	// return if unknown category
	return CastToCategory(text) != Unknown
}
