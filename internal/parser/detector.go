package parser

import (
	"bytes"
	"os"
)

type FileType string

const (
	FileTypeFIT     FileType = "fit"
	FileTypeTCX     FileType = "tcx"
	FileTypeGPX     FileType = "gpx"
	FileTypeUnknown FileType = "unknown"
)

// DetectFile sniffs the first 512 bytes of a file.
func DetectFile(path string) (FileType, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileTypeUnknown, err
	}
	defer f.Close()

	header := make([]byte, 512)
	n, err := f.Read(header)
	if err != nil && n == 0 {
		return FileTypeUnknown, err
	}
	return Detect(header[:n]), nil
}

// Detect classifies raw file content. FIT files carry a ".FIT" marker in the
// header; the XML formats are told apart by their root element.
func Detect(data []byte) FileType {
	if len(data) >= 12 && bytes.Equal(data[8:12], []byte(".FIT")) {
		return FileTypeFIT
	}

	if bytes.Contains(data, []byte("<TrainingCenterDatabase")) {
		return FileTypeTCX
	}
	if bytes.Contains(data, []byte("<gpx")) || bytes.Contains(data, []byte("topografix.com/GPX")) {
		return FileTypeGPX
	}
	return FileTypeUnknown
}
