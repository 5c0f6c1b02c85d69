package inference

import (
	logger "github.com/sirupsen/logrus"

	"fraudapi/src/features"
)

// Artifacts bundles everything loaded from the fixed artifact paths at
// process start: the feature schema, the fitted transform, and the
// classifier. All three are immutable and shared across requests.
type Artifacts struct {
	Schema       *features.Schema
	Preprocessor *Preprocessor
	Model        *Model
}

// LoadArtifacts loads and cross-validates the three artifacts. The schema
// partition is derived from the preprocessor's numeric/categorical
// blocks; the classifier width is checked against the preprocessor
// output. Any failure here must abort startup.
func LoadArtifacts(cfg Config) (*Artifacts, error) {
	columns, err := features.LoadColumns(cfg.FeaturesPath)
	if err != nil {
		return nil, err
	}

	preprocessor, err := LoadPreprocessor(cfg.PreprocessorPath)
	if err != nil {
		return nil, err
	}

	schema, err := features.NewSchema(columns,
		preprocessor.NumericFeatures(), preprocessor.CategoricalFeatures())
	if err != nil {
		return nil, err
	}

	classifier, err := LoadModel(cfg.ModelPath, preprocessor.OutputWidth())
	if err != nil {
		return nil, err
	}

	logger.WithField("model_features", schema.Len()).Info("Model artifacts ready")

	return &Artifacts{
		Schema:       schema,
		Preprocessor: preprocessor,
		Model:        classifier,
	}, nil
}
