package csv

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Decode maps the row onto v, which must be a pointer to a struct or a map.
// Struct fields are matched against header names through the `csv` tag,
// falling back to a case-insensitive match on the field name. String
// values are converted to the target field types where possible
// ("30" to int, "true" to bool, and so on).
//
// Decode requires a header and returns ErrHeaderUnavailable otherwise.
//
// Example:
//
//	type Person struct {
//	    Name string `csv:"name"`
//	    Age  int    `csv:"age"`
//	}
//	var p Person
//	err := row.Decode(&p)
func (r *Row) Decode(v any) error {
	m, err := r.Map()
	if err != nil {
		return err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "csv",
		WeaklyTypedInput: true,
		Result:           v,
	})
	if err != nil {
		return fmt.Errorf("csv: decode line %d: %w", r.line, err)
	}
	if err := dec.Decode(m); err != nil {
		return fmt.Errorf("csv: decode line %d: %w", r.line, err)
	}
	return nil
}
