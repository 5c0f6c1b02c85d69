package features

import (
	"strconv"

	"fraudapi/src/faults"
)

// Row is a complete feature row: one value per schema column, float64 for
// numeric features and string for categorical ones.
type Row map[string]any

// Expand builds a full feature row from a partial input. Every schema
// feature starts at its partition default (0.0 numeric, "" categorical),
// then fields present in the input overwrite the default after coercion
// to the partition's type. Input fields unknown to the schema are ignored.
func Expand(fields map[string]any, schema *Schema) (Row, error) {
	row := make(Row, schema.Len())
	for _, name := range schema.Columns() {
		if schema.IsNumeric(name) {
			row[name] = 0.0
		} else {
			row[name] = ""
		}
	}

	for name, value := range fields {
		if !schema.Has(name) {
			continue
		}
		if value == nil {
			continue
		}

		if schema.IsNumeric(name) {
			v, err := CoerceNumeric(value)
			if err != nil {
				return nil, faults.Newf(faults.SchemaCoercion, "features.Expand",
					"field %q: %v", name, err)
			}
			row[name] = v
			continue
		}

		v, err := CoerceCategorical(value)
		if err != nil {
			return nil, faults.Newf(faults.SchemaCoercion, "features.Expand",
				"field %q: %v", name, err)
		}
		row[name] = v
	}

	return row, nil
}

// CoerceNumeric converts a raw value to float64. Numeric text is parsed;
// anything else fails.
func CoerceNumeric(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, err
		}
		return f, nil
	default:
		return 0, strconv.ErrSyntax
	}
}

// CoerceCategorical converts a raw value to its string form. Numbers are
// rendered the way the training data stored them.
func CoerceCategorical(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", strconv.ErrSyntax
	}
}
