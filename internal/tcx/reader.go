package tcx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Read parses one TCX document from r into a TrainingCenterDatabase. The
// whole document is materialized in one pass; there is no partial result on
// failure. Schema violations surface as *MappingError, XML syntax problems
// as the underlying encoding/xml error with positional context.
func Read(r io.Reader) (*TrainingCenterDatabase, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse tcx: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Local != "TrainingCenterDatabase" {
			return nil, &MappingError{
				Tag:    se.Name.Local,
				Reason: "expected TrainingCenterDatabase root element",
			}
		}
		var db TrainingCenterDatabase
		if err := dec.DecodeElement(&db, &se); err != nil {
			return nil, fmt.Errorf("parse tcx: %w", err)
		}
		return &db, nil
	}
}

// ReadFile opens path and parses it with Read. A file that cannot be opened
// reports the *os.PathError; a file that cannot be mapped reports the parse
// failure. The two are distinguishable with errors.As.
func ReadFile(path string) (*TrainingCenterDatabase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tcx file: %w", err)
	}
	defer f.Close()

	db, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return db, nil
}
