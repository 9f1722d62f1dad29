package ch3w

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Pool configs carry the weight list under a "weights" field:
//
//	{
//	  "type": "WeightedCh3",
//	  "weights": [1.0, 0.5, 0.25]
//	}
//
// The document may list more weights than the pool holds servers; the
// extras are ignored. Fewer than n weights is a config error. All parse
// failures surface here, at load time, never inside a pick.

const weightsSchema = `{
	"type": "object",
	"properties": {
		"weights": {
			"type": "array",
			"items": {"type": "number", "minimum": 0.0, "maximum": 1.0}
		}
	},
	"required": ["weights"]
}`

var compiledWeightsSchema = jsonschema.MustCompileString("weights.json", weightsSchema)

// ParseWeightsJSON extracts a WeightVector for a pool of n servers from a
// JSON pool config.
func ParseWeightsJSON(raw []byte, n int) (WeightVector, error) {
	if n <= 0 {
		return WeightVector{}, errors.Wrapf(ErrInvalidPoolSize, "n = %d", n)
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return WeightVector{}, errors.Wrap(ErrMalformedConfig, err.Error())
	}
	if err := compiledWeightsSchema.Validate(doc); err != nil {
		return WeightVector{}, errors.Wrap(ErrMalformedConfig, err.Error())
	}

	// Schema passed, so the shape assertions below cannot fail.
	list := doc.(map[string]interface{})["weights"].([]interface{})
	if len(list) < n {
		return WeightVector{}, errors.Wrapf(ErrMalformedConfig,
			"pool of %d servers but only %d weights", n, len(list))
	}

	weights := make([]float64, 0, n)
	for _, v := range list[:n] {
		weights = append(weights, v.(float64))
	}

	return NewWeights(weights)
}

// ParseWeights extracts a WeightVector from an already-decoded config
// document, e.g. one level of a larger router config.
func ParseWeights(doc map[string]interface{}, n int) (WeightVector, error) {
	// Round-trip through JSON so YAML-decoded ints and other native
	// numeric types normalize before schema validation.
	raw, err := json.Marshal(doc)
	if err != nil {
		return WeightVector{}, errors.Wrap(ErrMalformedConfig, err.Error())
	}

	return ParseWeightsJSON(raw, n)
}

// ParseWeightsYAML is ParseWeightsJSON for YAML pool configs.
func ParseWeightsYAML(raw []byte, n int) (WeightVector, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return WeightVector{}, errors.Wrap(ErrMalformedConfig, err.Error())
	}

	return ParseWeights(doc, n)
}
