package inference

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config points at the model artifacts exported by the offline training
// pipeline. Paths are fixed for the process lifetime.
type Config struct {
	ModelPath        string `envconfig:"MODEL_PATH" default:"models/fraud_detection.json"`
	PreprocessorPath string `envconfig:"PREPROCESSOR_PATH" default:"models/preprocessor.json"`
	FeaturesPath     string `envconfig:"FEATURE_COLUMNS_PATH" default:"models/feature_columns.json"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}
