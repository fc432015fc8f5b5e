package project

import "regexp"

// Pattern accepts ids shaped <CODE>-<CODE>-<LETTERS>, e.g. "ABC-123-XYZ".
const Pattern = `^[A-Z0-9]+-[A-Z0-9]+-[A-Z]+$`

var (
	projectId         = regexp.MustCompile(Pattern)
	projectIdSegments = regexp.MustCompile(`^([A-Z0-9]+)-([A-Z0-9]+)-([A-Z]+)$`)
)

func IsValidProjectId(text string) bool {
	return projectId.MatchString(text)
}

// Split breaks a valid project id into its three segments.
func Split(text string) (code string, subCode string, letters string, ok bool) {
	m := projectIdSegments.FindStringSubmatch(text)
	if m == nil {
		return "", "", "", false
	}
	return m[1], m[2], m[3], true
}
