package output

import (
	"strings"

	"github.com/pvoss/grand/rng"
)

// TextFormatter joins stringified values with Delim (newline by default).
type TextFormatter struct {
	Delim string
}

func (f TextFormatter) Format(s rng.Samples) (Payload, error) {
	delim := f.Delim
	if delim == "" {
		delim = "\n"
	}
	parts := make([]string, len(s.Values))
	for i, v := range s.Values {
		parts[i] = render(v, s.Integer)
	}
	return Payload{Text: strings.Join(parts, delim), Ext: f.Extension()}, nil
}

func (TextFormatter) Extension() string { return ".txt" }

// CSVFormatter emits one value per line with an optional single header
// line. An empty Header suppresses the header row.
type CSVFormatter struct {
	Header string
}

func (f CSVFormatter) Format(s rng.Samples) (Payload, error) {
	lines := make([]string, 0, len(s.Values)+1)
	if f.Header != "" {
		lines = append(lines, f.Header)
	}
	for _, v := range s.Values {
		lines = append(lines, render(v, s.Integer))
	}
	return Payload{Text: strings.Join(lines, "\n"), Ext: f.Extension()}, nil
}

func (CSVFormatter) Extension() string { return ".csv" }
