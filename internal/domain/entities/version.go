package entities

import (
	"regexp"
	"strings"
)

// ConvertedVersion pairs the RPM-legal form of a version with the string found upstream.
// Converted equals Original when no conversion was needed.
type ConvertedVersion struct {
	Converted string
	Original  string
}

// IsConverted reports whether the RPM form differs from the upstream string.
func (v ConvertedVersion) IsConverted() bool {
	return v.Converted != v.Original
}

const releaseMarkers = `(?i:alpha|beta|preview|pre|rc|a|b|c|dev|post)`

var (
	// a dotted numeric release followed by one or more pre/post/dev segments,
	// e.g. 5.0.0.0b2dev188, 1.0.rc1, 2.1-post3, 5.0.0.0~b2~dev188
	pythonVersionPattern  = regexp.MustCompile(`^\d+(?:\.\d+)*((?:[._~-]?` + releaseMarkers + `\d*)+)$`)
	releaseSegmentPattern = regexp.MustCompile(`[._~-]?(` + releaseMarkers + `\d*)`)

	// RPM only allows alphanumerics and ._+~^ in the Version tag
	forbiddenCharsPattern = regexp.MustCompile(`[^A-Za-z0-9._+~^]+`)
)

// NormalizeVersion converts a raw upstream version into one RPM accepts.
//
// Python release segments become tilde segments (5.0.0.0b2dev188 turns into
// 5.0.0.0~b2~dev188) and characters RPM rejects are replaced with dots.
// Feeding the converted value back in returns it unchanged.
func NormalizeVersion(raw string) ConvertedVersion {
	converted := forbiddenCharsPattern.ReplaceAllString(raw, ".")
	converted = strings.Trim(converted, ".")

	if match := pythonVersionPattern.FindStringSubmatchIndex(converted); match != nil {
		release := converted[:match[2]]
		segments := releaseSegmentPattern.ReplaceAllString(converted[match[2]:], "~$1")
		converted = release + segments
	}

	return ConvertedVersion{Converted: converted, Original: raw}
}
