package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvoss/grand/rng"
)

func TestJSONFormatterArray(t *testing.T) {
	s := rng.Samples{Values: []float64{1.5, 2.7, 3.9}}
	p, err := JSONFormatter{}.Format(s)
	require.NoError(t, err)
	assert.Equal(t, "[1.5,2.7,3.9]", p.Text)
	assert.False(t, p.Binary)
}

func TestJSONFormatterIntegerSamples(t *testing.T) {
	s := rng.Samples{Values: []float64{3, 0, 12}, Integer: true}
	p, err := JSONFormatter{}.Format(s)
	require.NoError(t, err)
	assert.Equal(t, "[3,0,12]", p.Text)
}

func TestJSONFormatterPretty(t *testing.T) {
	s := rng.Samples{Values: []float64{1, 2}}
	p, err := JSONFormatter{Pretty: true}.Format(s)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p.Text, "[\n  "))
	assert.True(t, json.Valid([]byte(p.Text)))
}

func TestJSONFormatterMetadata(t *testing.T) {
	s := rng.Samples{Values: []float64{1.5, 2.7, 3.9, 4.1, 5.3}}
	p, err := JSONFormatter{Metadata: true}.Format(s)
	require.NoError(t, err)

	var doc struct {
		Data     []float64 `json:"data"`
		Metadata struct {
			Count int     `json:"count"`
			Min   float64 `json:"min"`
			Max   float64 `json:"max"`
			Mean  float64 `json:"mean"`
			Std   float64 `json:"std"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal([]byte(p.Text), &doc))
	assert.Equal(t, s.Values, doc.Data)
	assert.Equal(t, 5, doc.Metadata.Count)
	assert.Equal(t, 1.5, doc.Metadata.Min)
	assert.Equal(t, 5.3, doc.Metadata.Max)
	assert.InDelta(t, 3.5, doc.Metadata.Mean, 1e-9)
	assert.InDelta(t, 1.2961481396816, doc.Metadata.Std, 1e-9)
}

func TestJSONFormatterMetadataEmpty(t *testing.T) {
	_, err := JSONFormatter{Metadata: true}.Format(rng.Samples{})
	assert.Error(t, err)
}
