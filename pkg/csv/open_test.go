package csv_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/afero"

	"github.com/shapestone/shape-csvstream/pkg/csv"
)

func TestOpenFileFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "\ufeffname,qty\nbolt,10\nnut,25\n"

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	if _, err := zw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	files := map[string][]byte{
		"plain.csv":     []byte(content),
		"packed.csv.gz": gz.Bytes(),
	}
	for name, data := range files {
		if err := afero.WriteFile(fs, name, data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	d := csv.DefaultDialect()
	d.HasHeader = true

	for name := range files {
		t.Run(name, func(t *testing.T) {
			r, err := csv.OpenFileFs(fs, name, d)
			if err != nil {
				t.Fatal(err)
			}
			var got []map[string]string
			err = csv.ForEach(r, func(row *csv.Row) bool {
				m, err := row.Map()
				if err != nil {
					t.Error(err)
					return false
				}
				got = append(got, m)
				return true
			})
			if err != nil {
				t.Fatal(err)
			}
			want := []map[string]string{
				{"name": "bolt", "qty": "10"},
				{"name": "nut", "qty": "25"},
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("rows (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := csv.OpenFileFs(fs, "nope.csv", d); err == nil {
			t.Error("OpenFileFs(missing) succeeded")
		}
	})
}
