package entities

import (
	"regexp"
	"strings"
)

const (
	versionTag       = "Version:"
	unconvertedMacro = "version_unconverted"
	defineKeyword    = "%define"
)

var (
	versionTagPattern        = regexp.MustCompile(`^Version:(\s*)(.*)$`)
	unconvertedDefinePattern = regexp.MustCompile(`^(%(?:define|global)\s+version_unconverted)(\s+).*$`)

	// macros whose arguments rebuild the upstream <name>-<version> directory,
	// these need the literal upstream version to find the unpacked sources
	pathMacroPattern = regexp.MustCompile(`^\s*%(?:setup|autosetup)\b`)

	versionReferencePattern = regexp.MustCompile(`%\{version\}|%version\b`)
)

// PatchSpec rewrites the Version tag of the spec file lines to the converted
// version.
//
// Behaviour:
//   - If no "Version:" tag exists, the lines are returned unchanged together with ErrTagNotFound.
//   - An existing "%define version_unconverted" line is always updated to the original string.
//   - When conversion changed the string and no such define exists, one is inserted
//     right after the first Version tag, followed by a blank separator line.
//   - When conversion changed the string, %{version} references on %setup and
//     %autosetup lines are redirected to %{version_unconverted}.
//
// Patching twice with the same version gives the same lines.
func PatchSpec(lines []string, version ConvertedVersion) ([]string, error) {
	tagIdx := findVersionTagIndex(lines)
	if tagIdx < 0 {
		return lines, ErrTagNotFound
	}

	result := make([]string, len(lines))
	copy(result, lines)

	for i, line := range result {
		if match := versionTagPattern.FindStringSubmatch(line); match != nil {
			result[i] = versionTag + separatorOrSpace(match[1]) + version.Converted
		}
	}

	defineIdx := findUnconvertedDefineIndex(result)
	if defineIdx >= 0 {
		match := unconvertedDefinePattern.FindStringSubmatch(result[defineIdx])
		result[defineIdx] = match[1] + match[2] + version.Original
	}

	if !version.IsConverted() {
		return result, nil
	}

	if defineIdx < 0 {
		defineIdx = tagIdx + 1
		result = insertLines(result, defineIdx, []string{unconvertedDefineLine(version.Original)})
	}
	result = ensureSeparator(result, defineIdx)

	for i, line := range result {
		if pathMacroPattern.MatchString(line) {
			result[i] = redirectVersionReferences(line)
		}
	}

	return result, nil
}

// PatchSpecContent is PatchSpec over the whole file content.
func PatchSpecContent(content string, version ConvertedVersion) (string, error) {
	lines, err := PatchSpec(strings.Split(content, "\n"), version)
	if err != nil {
		return content, err
	}
	return strings.Join(lines, "\n"), nil
}

// findVersionTagIndex returns the line index of the first Version tag, or -1 if not found.
func findVersionTagIndex(lines []string) int {
	for i, line := range lines {
		if versionTagPattern.MatchString(line) {
			return i
		}
	}
	return -1
}

// findUnconvertedDefineIndex returns the line index of the version_unconverted
// definition, or -1 if not found.
func findUnconvertedDefineIndex(lines []string) int {
	for i, line := range lines {
		if unconvertedDefinePattern.MatchString(line) {
			return i
		}
	}
	return -1
}

func unconvertedDefineLine(original string) string {
	return defineKeyword + " " + unconvertedMacro + " " + original
}

func separatorOrSpace(sep string) string {
	if sep == "" {
		return " "
	}
	return sep
}

// ensureSeparator appends a blank line after idx unless the next line is already blank
// or idx is the last line.
func ensureSeparator(lines []string, idx int) []string {
	next := idx + 1
	if next >= len(lines) || strings.TrimSpace(lines[next]) == "" {
		return lines
	}
	return insertLines(lines, next, []string{""})
}

func redirectVersionReferences(line string) string {
	return versionReferencePattern.ReplaceAllStringFunc(line, func(ref string) string {
		if strings.HasPrefix(ref, "%{") {
			return "%{" + unconvertedMacro + "}"
		}
		return "%" + unconvertedMacro
	})
}

// insertLines inserts extra lines into slice at the given index.
func insertLines(lines []string, at int, extra []string) []string {
	result := make([]string, 0, len(lines)+len(extra))
	result = append(result, lines[:at]...)
	result = append(result, extra...)
	result = append(result, lines[at:]...)
	return result
}
