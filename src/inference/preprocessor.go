package inference

import (
	"encoding/json"
	"os"

	logger "github.com/sirupsen/logrus"

	"fraudapi/src/faults"
	"fraudapi/src/features"
)

// Transformer maps a full feature row to the numeric vector the
// classifier consumes.
type Transformer interface {
	Transform(row features.Row) ([]float64, error)
}

// preprocessorArtifact is the serialized fitted transform: standard
// scaling parameters for numeric features and one-hot vocabularies for
// categorical ones, in training column order (numeric block first).
type preprocessorArtifact struct {
	Numeric struct {
		Features []string  `json:"features"`
		Means    []float64 `json:"means"`
		Scales   []float64 `json:"scales"`
	} `json:"numeric"`
	Categorical struct {
		Features   []string   `json:"features"`
		Categories [][]string `json:"categories"`
	} `json:"categorical"`
}

// Preprocessor is the deterministic, inference-time-stateless transform
// reconstructed from the artifact. Safe for concurrent use.
type Preprocessor struct {
	art   preprocessorArtifact
	index []map[string]int // per categorical feature: category -> one-hot slot
	width int
}

// LoadPreprocessor reads and validates the preprocessing artifact.
// Unreadable files are ModelLoad faults; internally inconsistent
// artifacts (the partition cannot be derived) are SchemaArtifact faults.
func LoadPreprocessor(path string) (*Preprocessor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, faults.New(faults.ModelLoad, "inference.LoadPreprocessor", err)
	}

	var art preprocessorArtifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, faults.New(faults.ModelLoad, "inference.LoadPreprocessor", err)
	}

	if len(art.Numeric.Means) != len(art.Numeric.Features) ||
		len(art.Numeric.Scales) != len(art.Numeric.Features) {
		return nil, faults.Newf(faults.SchemaArtifact, "inference.LoadPreprocessor",
			"numeric block inconsistent: %d features, %d means, %d scales",
			len(art.Numeric.Features), len(art.Numeric.Means), len(art.Numeric.Scales))
	}
	if len(art.Categorical.Categories) != len(art.Categorical.Features) {
		return nil, faults.Newf(faults.SchemaArtifact, "inference.LoadPreprocessor",
			"categorical block inconsistent: %d features, %d vocabularies",
			len(art.Categorical.Features), len(art.Categorical.Categories))
	}
	if len(art.Numeric.Features)+len(art.Categorical.Features) == 0 {
		return nil, faults.Newf(faults.SchemaArtifact, "inference.LoadPreprocessor",
			"artifact %s declares no features", path)
	}

	p := &Preprocessor{art: art}

	// A zero scale means the column was constant during fitting; divide
	// by 1 instead, matching the fitted transform.
	for i, s := range p.art.Numeric.Scales {
		if s == 0 {
			p.art.Numeric.Scales[i] = 1
		}
	}

	p.width = len(art.Numeric.Features)
	p.index = make([]map[string]int, len(art.Categorical.Features))
	for i, vocab := range art.Categorical.Categories {
		slots := make(map[string]int, len(vocab))
		for j, category := range vocab {
			slots[category] = j
		}
		p.index[i] = slots
		p.width += len(vocab)
	}

	logger.WithFields(map[string]interface{}{
		"numeric":      len(art.Numeric.Features),
		"categorical":  len(art.Categorical.Features),
		"output_width": p.width,
	}).Info("Preprocessor loaded")

	return p, nil
}

// NumericFeatures returns the numeric partition in artifact order.
func (p *Preprocessor) NumericFeatures() []string {
	return p.art.Numeric.Features
}

// CategoricalFeatures returns the categorical partition in artifact order.
func (p *Preprocessor) CategoricalFeatures() []string {
	return p.art.Categorical.Features
}

// OutputWidth is the length of the vector Transform produces.
func (p *Preprocessor) OutputWidth() int {
	return p.width
}

// Transform scales numeric features and one-hot encodes categorical ones
// into a single vector, numeric block first. Categories unseen during
// fitting encode to all zeros. A row missing a feature or carrying a
// wrongly typed value is rejected; after normalization that cannot
// happen for schema-conformant rows.
func (p *Preprocessor) Transform(row features.Row) ([]float64, error) {
	out := make([]float64, 0, p.width)

	for i, name := range p.art.Numeric.Features {
		raw, ok := row[name]
		if !ok {
			return nil, faults.Newf(faults.Preprocessing, "inference.Transform",
				"row missing numeric feature %q", name)
		}
		v, ok := raw.(float64)
		if !ok {
			return nil, faults.Newf(faults.Preprocessing, "inference.Transform",
				"numeric feature %q has non-float value %T", name, raw)
		}
		out = append(out, (v-p.art.Numeric.Means[i])/p.art.Numeric.Scales[i])
	}

	for i, name := range p.art.Categorical.Features {
		raw, ok := row[name]
		if !ok {
			return nil, faults.Newf(faults.Preprocessing, "inference.Transform",
				"row missing categorical feature %q", name)
		}
		s, ok := raw.(string)
		if !ok {
			return nil, faults.Newf(faults.Preprocessing, "inference.Transform",
				"categorical feature %q has non-string value %T", name, raw)
		}

		block := make([]float64, len(p.art.Categorical.Categories[i]))
		if slot, known := p.index[i][s]; known {
			block[slot] = 1
		}
		out = append(out, block...)
	}

	return out, nil
}
