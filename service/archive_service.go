package service

import (
	"archive/zip"
	"compress/flate"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ArchiveService streams rendered labels as a compressed zip archive.
// Files are copied into the archive one at a time, so batches of hundreds
// of documents never sit in memory at once.
// Implements ArchiveServiceInterface
type ArchiveService struct{}

// NewArchiveService creates a new ArchiveService
func NewArchiveService() *ArchiveService {
	return &ArchiveService{}
}

// Ensure ArchiveService implements ArchiveServiceInterface
var _ ArchiveServiceInterface = (*ArchiveService)(nil)

// Stream writes a zip archive of files to out with maximum compression,
// preserving the directory structure relative to rootDir
func (s *ArchiveService) Stream(out io.Writer, rootDir string, files []string) error {
	archive := zip.NewWriter(out)
	archive.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestCompression)
	})

	for _, path := range files {
		if err := s.addFile(archive, rootDir, path); err != nil {
			archive.Close()
			return err
		}
	}

	if err := archive.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}

// addFile copies one file into the archive under its rootDir-relative name
func (s *ArchiveService) addFile(archive *zip.Writer, rootDir, path string) error {
	relative, err := filepath.Rel(rootDir, path)
	if err != nil {
		return fmt.Errorf("failed to compute archive path for %s: %w", path, err)
	}

	entry, err := archive.Create(filepath.ToSlash(relative))
	if err != nil {
		return fmt.Errorf("failed to create archive entry %s: %w", relative, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if _, err := io.Copy(entry, file); err != nil {
		return fmt.Errorf("failed to write archive entry %s: %w", relative, err)
	}
	return nil
}
