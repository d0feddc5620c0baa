package archive

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/setversion/internal/domain/entities"
	"github.com/rios0rios0/setversion/internal/domain/repositories"
)

const sourceName = "archive"

// <name>-<version>/PKG-INFO or <name>-<version>/.../<name>.egg-info/PKG-INFO
var pkgInfoPattern = regexp.MustCompile(`^([^/]+?)-(\d[^/]*)/(?:[^/]+/)*(?:[^/]+\.egg-info/)?PKG-INFO$`)

// ArchiveVersionSourceRepository finds the version in the layout of a source archive.
//
// For each archive among the candidate files, in order:
//   - the first member whose top directory is "<basename>-<version>" wins;
//   - otherwise the first Python PKG-INFO member under "<name>-<version>/";
//   - otherwise the archive's own name, if it is "<basename>-<version>.<ext>".
//
// Several matching members are not an error, the first one in archive order is used.
type ArchiveVersionSourceRepository struct {
	reader repositories.ArchiveRepository
}

// NewArchiveVersionSourceRepository creates the archive version source.
func NewArchiveVersionSourceRepository(reader repositories.ArchiveRepository) repositories.VersionSourceRepository {
	return &ArchiveVersionSourceRepository{reader: reader}
}

func (it *ArchiveVersionSourceRepository) Name() string { return sourceName }

func (it *ArchiveVersionSourceRepository) Resolve(input entities.DetectionInput) (string, error) {
	for _, path := range input.Files {
		stem, ok := entities.TrimArchiveExtension(filepath.Base(path))
		if !ok {
			continue
		}
		if input.Basename != "" && !strings.HasPrefix(stem, input.Basename) {
			logger.Debugf("[archive] Skipping %s: does not match basename %q", path, input.Basename)
			continue
		}

		basename := input.Basename
		if basename == "" {
			basename = entities.DeriveBasename(stem)
		}

		members, err := it.reader.ListMembers(path)
		if err != nil {
			logger.Warnf("[archive] Failed to list %s: %v", path, err)
			continue
		}

		if version := versionFromMembers(members, basename); version != "" {
			logger.Debugf("[archive] Found directory %s-%s in %s", basename, version, path)
			return version, nil
		}
		if version := versionFromPkgInfo(members); version != "" {
			logger.Debugf("[archive] Found PKG-INFO for version %s in %s", version, path)
			return version, nil
		}
		if version := entities.VersionFromStem(stem, basename); version != "" {
			logger.Debugf("[archive] Using version %s from archive name %s", version, path)
			return version, nil
		}
	}

	return "", fmt.Errorf("%w: no matching archive", entities.ErrVersionNotFound)
}

// versionFromMembers returns the version of the first top directory named <basename>-<version>.
func versionFromMembers(members []string, basename string) string {
	for _, member := range members {
		top, _, _ := strings.Cut(cleanMember(member), "/")
		if version := entities.VersionFromStem(top, basename); version != "" {
			return version
		}
	}
	return ""
}

func versionFromPkgInfo(members []string) string {
	for _, member := range members {
		if match := pkgInfoPattern.FindStringSubmatch(cleanMember(member)); match != nil {
			return match[2]
		}
	}
	return ""
}

func cleanMember(member string) string {
	return strings.TrimPrefix(member, "./")
}
