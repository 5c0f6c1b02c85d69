package inference

import (
	"encoding/json"
	"math"
	"os"

	logger "github.com/sirupsen/logrus"

	"fraudapi/src/faults"
)

// Classifier scores a preprocessed feature vector as a fraud probability.
type Classifier interface {
	PredictProbability(x []float64) (float64, error)
}

// Model evaluates the exported classifier coefficients: a linear score
// through a sigmoid. Deterministic and safe for concurrent use.
type Model struct {
	weights []float64
	bias    float64
}

type modelArtifact struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// LoadModel reads the classifier artifact and checks it against the
// preprocessor output width. Any mismatch is fatal at startup.
func LoadModel(path string, wantWidth int) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, faults.New(faults.ModelLoad, "inference.LoadModel", err)
	}

	var art modelArtifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, faults.New(faults.ModelLoad, "inference.LoadModel", err)
	}

	if len(art.Weights) == 0 {
		return nil, faults.Newf(faults.ModelLoad, "inference.LoadModel",
			"artifact %s has no weights", path)
	}
	if len(art.Weights) != wantWidth {
		return nil, faults.Newf(faults.ModelLoad, "inference.LoadModel",
			"feature count mismatch: model expects %d, preprocessor produces %d",
			len(art.Weights), wantWidth)
	}

	logger.WithField("features", len(art.Weights)).Info("Classifier loaded")

	return &Model{weights: art.Weights, bias: art.Bias}, nil
}

// PredictProbability returns the fraud probability for one preprocessed
// vector, always in [0,1].
func (m *Model) PredictProbability(x []float64) (float64, error) {
	if len(x) != len(m.weights) {
		return 0, faults.Newf(faults.Preprocessing, "inference.PredictProbability",
			"vector length %d does not match model width %d", len(x), len(m.weights))
	}

	sum := m.bias
	for i, v := range x {
		sum += m.weights[i] * v
	}
	return sigmoid(sum), nil
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
