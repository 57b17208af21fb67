package service

import "io"

// ArchiveServiceInterface defines the contract for archive streaming
type ArchiveServiceInterface interface {
	// Stream writes a zip archive of files to out. Entry names are the
	// file paths relative to rootDir, always with forward slashes
	Stream(out io.Writer, rootDir string, files []string) error
}
