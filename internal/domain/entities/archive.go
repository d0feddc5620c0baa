package entities

import (
	"regexp"
	"strings"
)

// ArchiveFormat identifies how an archive's member list is read.
type ArchiveFormat string

const (
	FormatTar      ArchiveFormat = "tar"
	FormatTarGzip  ArchiveFormat = "tar.gz"
	FormatTarBzip2 ArchiveFormat = "tar.bz2"
	FormatTarXz    ArchiveFormat = "tar.xz"
	FormatTarZstd  ArchiveFormat = "tar.zst"
	FormatZip      ArchiveFormat = "zip"
	FormatUnknown  ArchiveFormat = ""
)

// archiveExtensions is ordered so that compound extensions are tried before ".tar".
var archiveExtensions = []struct { //nolint:gochecknoglobals // lookup table
	suffix string
	format ArchiveFormat
}{
	{".tar.gz", FormatTarGzip},
	{".tgz", FormatTarGzip},
	{".tar.bz2", FormatTarBzip2},
	{".tbz2", FormatTarBzip2},
	{".tar.xz", FormatTarXz},
	{".txz", FormatTarXz},
	{".tar.zst", FormatTarZstd},
	{".tzst", FormatTarZstd},
	{".tar", FormatTar},
	{".zip", FormatZip},
}

var (
	branchSuffixPattern  = regexp.MustCompile(`-(?:master|main|trunk|develop|devel|HEAD)$`)
	versionedStemPattern = regexp.MustCompile(`^(.+?)-(\d[^-]*)$`)
)

// DetectArchiveFormat returns the format implied by the file name,
// or FormatUnknown if the name is not a recognized archive.
func DetectArchiveFormat(name string) ArchiveFormat {
	_, format := splitArchiveName(name)
	return format
}

// TrimArchiveExtension returns the file name without its archive extension.
// The boolean is false when name is not a recognized archive.
func TrimArchiveExtension(name string) (string, bool) {
	stem, format := splitArchiveName(name)
	return stem, format != FormatUnknown
}

// DeriveBasename guesses the upstream project name from an archive stem:
// a branch suffix such as "-master" is dropped, then a trailing "-<version>".
func DeriveBasename(stem string) string {
	stem = branchSuffixPattern.ReplaceAllString(stem, "")
	if match := versionedStemPattern.FindStringSubmatch(stem); match != nil {
		return match[1]
	}
	return stem
}

// VersionFromStem extracts <version> from "<basename>-<version>", returning ""
// when stem does not follow that convention. Versions must start with a digit.
func VersionFromStem(stem, basename string) string {
	prefix := basename + "-"
	if basename == "" || !strings.HasPrefix(stem, prefix) {
		return ""
	}
	version := strings.TrimPrefix(stem, prefix)
	if version == "" || version[0] < '0' || version[0] > '9' {
		return ""
	}
	return version
}

func splitArchiveName(name string) (string, ArchiveFormat) {
	lower := strings.ToLower(name)
	for _, ext := range archiveExtensions {
		if strings.HasSuffix(lower, ext.suffix) && len(name) > len(ext.suffix) {
			return name[:len(name)-len(ext.suffix)], ext.format
		}
	}
	return name, FormatUnknown
}
