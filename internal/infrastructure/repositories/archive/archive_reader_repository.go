package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/bzip2"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
	"github.com/ulikunitz/xz"

	"github.com/rios0rios0/setversion/internal/domain/entities"
	"github.com/rios0rios0/setversion/internal/domain/repositories"
)

// ErrUnsupportedArchive is returned for file names without a known archive extension.
var ErrUnsupportedArchive = errors.New("unsupported archive format")

// ArchiveReaderRepository lists tar (plain, gzip, bzip2, xz, zstd) and zip members.
type ArchiveReaderRepository struct {
	fs afero.Fs
}

// NewArchiveReaderRepository creates an archive reader over fs.
func NewArchiveReaderRepository(fs afero.Fs) repositories.ArchiveRepository {
	return &ArchiveReaderRepository{fs: fs}
}

func (it *ArchiveReaderRepository) ListMembers(path string) ([]string, error) {
	format := entities.DetectArchiveFormat(filepath.Base(path))
	if format == entities.FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedArchive, path)
	}

	file, err := it.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %q: %w", path, err)
	}
	defer file.Close()

	if format == entities.FormatZip {
		return listZipMembers(file)
	}

	stream, closeStream, err := decompress(file, format)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %q: %w", path, err)
	}
	defer closeStream()

	members, err := listTarMembers(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive %q: %w", path, err)
	}
	return members, nil
}

// decompress wraps the raw tarball stream with the decoder for format.
func decompress(r io.Reader, format entities.ArchiveFormat) (io.Reader, func(), error) {
	noop := func() {}

	switch format {
	case entities.FormatTar:
		return r, noop, nil
	case entities.FormatTarGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, noop, err
		}
		return gz, func() { _ = gz.Close() }, nil
	case entities.FormatTarBzip2:
		return bzip2.NewReader(r), noop, nil
	case entities.FormatTarXz:
		xzReader, err := xz.NewReader(r)
		if err != nil {
			return nil, noop, err
		}
		return xzReader, noop, nil
	case entities.FormatTarZstd:
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, noop, err
		}
		return decoder, decoder.Close, nil
	default:
		return nil, noop, fmt.Errorf("%w: %s", ErrUnsupportedArchive, format)
	}
}

func listTarMembers(r io.Reader) ([]string, error) {
	var members []string
	reader := tar.NewReader(r)
	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return members, nil
		}
		if err != nil {
			return nil, err
		}
		members = append(members, header.Name)
	}
}

func listZipMembers(file afero.File) ([]string, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat archive: %w", err)
	}

	reader, err := zip.NewReader(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to read zip archive: %w", err)
	}

	members := make([]string, 0, len(reader.File))
	for _, f := range reader.File {
		members = append(members, f.Name)
	}
	return members, nil
}
