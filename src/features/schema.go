package features

import (
	"encoding/json"
	"os"

	logger "github.com/sirupsen/logrus"

	"fraudapi/src/faults"
)

// Schema is the fixed ordered list of feature columns the model was
// trained on, partitioned into numeric and categorical subsets. It is
// built once at startup and shared read-only across requests.
type Schema struct {
	columns     []string
	numeric     map[string]struct{}
	categorical map[string]struct{}
}

// NewSchema validates that numeric and categorical form an exact disjoint
// partition of columns and returns the immutable schema.
func NewSchema(columns, numeric, categorical []string) (*Schema, error) {
	s := &Schema{
		columns:     append([]string(nil), columns...),
		numeric:     make(map[string]struct{}, len(numeric)),
		categorical: make(map[string]struct{}, len(categorical)),
	}

	for _, name := range numeric {
		s.numeric[name] = struct{}{}
	}
	for _, name := range categorical {
		if _, dup := s.numeric[name]; dup {
			return nil, faults.Newf(faults.SchemaArtifact, "features.NewSchema",
				"feature %q present in both numeric and categorical partitions", name)
		}
		s.categorical[name] = struct{}{}
	}

	if got, want := len(s.numeric)+len(s.categorical), len(s.columns); got != want {
		return nil, faults.Newf(faults.SchemaArtifact, "features.NewSchema",
			"partition covers %d features, column list has %d", got, want)
	}

	for _, name := range s.columns {
		_, num := s.numeric[name]
		_, cat := s.categorical[name]
		if !num && !cat {
			return nil, faults.Newf(faults.SchemaArtifact, "features.NewSchema",
				"feature %q missing from both partitions", name)
		}
	}

	logger.WithFields(map[string]interface{}{
		"columns":     len(s.columns),
		"numeric":     len(s.numeric),
		"categorical": len(s.categorical),
	}).Info("Feature schema loaded")

	return s, nil
}

// LoadColumns reads the full ordered feature-name list from a JSON array
// artifact written by the training pipeline.
func LoadColumns(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, faults.New(faults.SchemaArtifact, "features.LoadColumns", err)
	}

	var columns []string
	if err := json.Unmarshal(raw, &columns); err != nil {
		return nil, faults.New(faults.SchemaArtifact, "features.LoadColumns", err)
	}
	if len(columns) == 0 {
		return nil, faults.Newf(faults.SchemaArtifact, "features.LoadColumns",
			"feature column artifact %s is empty", path)
	}
	return columns, nil
}

// Columns returns the full ordered feature-name list.
func (s *Schema) Columns() []string {
	return s.columns
}

// Len is the total number of features.
func (s *Schema) Len() int {
	return len(s.columns)
}

// IsNumeric reports whether name belongs to the numeric partition.
func (s *Schema) IsNumeric(name string) bool {
	_, ok := s.numeric[name]
	return ok
}

// IsCategorical reports whether name belongs to the categorical partition.
func (s *Schema) IsCategorical(name string) bool {
	_, ok := s.categorical[name]
	return ok
}

// Has reports whether name is a known feature.
func (s *Schema) Has(name string) bool {
	return s.IsNumeric(name) || s.IsCategorical(name)
}
