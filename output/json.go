package output

import (
	"encoding/json"

	"github.com/montanaflynn/stats"

	"github.com/pvoss/grand/errdefs"
	"github.com/pvoss/grand/rng"
)

// JSONFormatter serializes the bare value array or, when Metadata is set,
// an object with the data array and summary statistics. Pretty switches
// between indented and compact rendering.
type JSONFormatter struct {
	Pretty   bool
	Metadata bool
}

type jsonMetadata struct {
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
}

type jsonDocument struct {
	Data     []interface{} `json:"data"`
	Metadata jsonMetadata  `json:"metadata"`
}

func (f JSONFormatter) Format(s rng.Samples) (Payload, error) {
	values := make([]interface{}, len(s.Values))
	for i, v := range s.Values {
		if s.Integer {
			values[i] = int64(v)
		} else {
			values[i] = v
		}
	}

	var doc interface{} = values
	if f.Metadata {
		md, err := metadata(s.Values)
		if err != nil {
			return Payload{}, err
		}
		doc = jsonDocument{Data: values, Metadata: md}
	}

	var (
		data []byte
		err  error
	)
	if f.Pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return Payload{}, errdefs.Wrapf(errdefs.KindOutput, err, "failed to serialize samples as json")
	}
	return Payload{Text: string(data), Ext: f.Extension()}, nil
}

func metadata(values []float64) (jsonMetadata, error) {
	data := stats.Float64Data(values)
	min, err := data.Min()
	if err != nil {
		return jsonMetadata{}, errdefs.Wrapf(errdefs.KindOutput, err, "failed to compute metadata")
	}
	max, err := data.Max()
	if err != nil {
		return jsonMetadata{}, errdefs.Wrapf(errdefs.KindOutput, err, "failed to compute metadata")
	}
	mean, err := data.Mean()
	if err != nil {
		return jsonMetadata{}, errdefs.Wrapf(errdefs.KindOutput, err, "failed to compute metadata")
	}
	std, err := data.StandardDeviationPopulation()
	if err != nil {
		return jsonMetadata{}, errdefs.Wrapf(errdefs.KindOutput, err, "failed to compute metadata")
	}
	return jsonMetadata{Count: len(values), Min: min, Max: max, Mean: mean, Std: std}, nil
}

func (JSONFormatter) Extension() string { return ".json" }
