// Package parser turns device activity files (TCX, FIT) into summary
// metrics. Format selection goes by file extension first, then by content
// sniffing.
package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/openfitness/tcxsync/internal/models"
)

// Parser extracts summary metrics from one activity file.
type Parser interface {
	ParseFile(path string) (*models.ActivityMetrics, error)
}

// New picks a parser for path by extension, falling back to content
// detection when the extension is unknown.
func New(path string) (Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tcx":
		return NewTCXParser(), nil
	case ".fit":
		return NewFITParser(), nil
	}

	fileType, err := DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("detect file type: %w", err)
	}
	return NewForType(fileType)
}

// NewForType returns the parser for a detected file type.
func NewForType(fileType FileType) (Parser, error) {
	switch fileType {
	case FileTypeTCX:
		return NewTCXParser(), nil
	case FileTypeFIT:
		return NewFITParser(), nil
	case FileTypeGPX:
		return nil, fmt.Errorf("GPX files are not supported")
	default:
		return nil, fmt.Errorf("unsupported file type: %s", fileType)
	}
}
