package csv

import (
	"github.com/spf13/afero"

	"github.com/shapestone/shape-csvstream/internal/source"
)

// OpenFile opens a CSV file for reading. Gzip and zstd files are
// decompressed transparently (detected by extension or content) and a
// leading byte order mark is honoured. The returned Reader closes the file.
//
// Example:
//
//	r, err := csv.OpenFile("data.csv.gz", csv.DefaultDialect())
//	if err != nil {
//	    return err
//	}
//	err = csv.ForEach(r, func(row *csv.Row) bool {
//	    fmt.Println(row.Fields())
//	    return true
//	})
func OpenFile(name string, d Dialect) (*Reader, error) {
	return OpenFileFs(afero.NewOsFs(), name, d)
}

// OpenFileFs is OpenFile on an arbitrary afero filesystem.
func OpenFileFs(fs afero.Fs, name string, d Dialect) (*Reader, error) {
	rc, err := source.Open(fs, name, source.Options{})
	if err != nil {
		return nil, err
	}
	return NewReader(rc, d), nil
}
