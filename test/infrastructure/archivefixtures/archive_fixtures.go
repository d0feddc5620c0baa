//go:build integration || unit || test

// Package archivefixtures writes small source archives into an afero filesystem.
package archivefixtures //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
	"github.com/ulikunitz/xz"

	"github.com/rios0rios0/setversion/internal/domain/entities"
)

// WriteArchive writes an archive at path holding the given members. Names ending
// in "/" become directory entries, everything else an empty regular file.
// The format is taken from the file extension.
func WriteArchive(fs afero.Fs, path string, members []string) error {
	var buf bytes.Buffer

	format := entities.DetectArchiveFormat(path)
	var err error
	switch format {
	case entities.FormatZip:
		err = writeZip(&buf, members)
	case entities.FormatTar, entities.FormatTarGzip, entities.FormatTarXz, entities.FormatTarZstd:
		err = writeCompressedTar(&buf, format, members)
	default:
		err = fmt.Errorf("cannot write archive format %q for %s", format, path)
	}
	if err != nil {
		return err
	}

	return afero.WriteFile(fs, path, buf.Bytes(), 0o644)
}

func writeCompressedTar(w io.Writer, format entities.ArchiveFormat, members []string) error {
	switch format {
	case entities.FormatTarGzip:
		gz := gzip.NewWriter(w)
		if err := writeTar(gz, members); err != nil {
			return err
		}
		return gz.Close()
	case entities.FormatTarXz:
		xzWriter, err := xz.NewWriter(w)
		if err != nil {
			return err
		}
		if tarErr := writeTar(xzWriter, members); tarErr != nil {
			return tarErr
		}
		return xzWriter.Close()
	case entities.FormatTarZstd:
		encoder, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		if tarErr := writeTar(encoder, members); tarErr != nil {
			return tarErr
		}
		return encoder.Close()
	default:
		return writeTar(w, members)
	}
}

func writeTar(w io.Writer, members []string) error {
	tw := tar.NewWriter(w)
	for _, name := range members {
		header := &tar.Header{Name: name, Mode: 0o644, Typeflag: tar.TypeReg}
		if strings.HasSuffix(name, "/") {
			header.Mode = 0o755
			header.Typeflag = tar.TypeDir
		}
		if err := tw.WriteHeader(header); err != nil {
			return err
		}
	}
	return tw.Close()
}

func writeZip(w io.Writer, members []string) error {
	zw := zip.NewWriter(w)
	for _, name := range members {
		if _, err := zw.Create(name); err != nil {
			return err
		}
	}
	return zw.Close()
}
