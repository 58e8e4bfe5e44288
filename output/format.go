// Package output serializes sample sequences and writes them to standard
// output or to files.
package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pvoss/grand/errdefs"
	"github.com/pvoss/grand/rng"
)

type Format uint8

const (
	Text Format = iota + 1
	CSV
	JSON
	Binary
)

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case CSV:
		return "csv"
	case JSON:
		return "json"
	case Binary:
		return "binary"
	}
	return fmt.Sprintf("unknown(%d)", uint8(f))
}

// Extension reports the canonical file extension for f.
func (f Format) Extension() string {
	switch f {
	case Text:
		return ".txt"
	case CSV:
		return ".csv"
	case JSON:
		return ".json"
	case Binary:
		return ".bin"
	}
	return ""
}

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text":
		return Text, nil
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	case "binary":
		return Binary, nil
	}
	return 0, errdefs.Outputf(
		"unknown format type: %q, available formats: binary, csv, json, text", s)
}

// Payload is one formatted sample sequence: either text or raw bytes,
// never both, plus the canonical file extension.
type Payload struct {
	Text   string
	Bytes  []byte
	Binary bool
	Ext    string
}

// Formatter turns a sample sequence into a serialized payload.
type Formatter interface {
	Format(s rng.Samples) (Payload, error)
	Extension() string
}

// New returns the formatter for f with its default options.
func New(f Format) Formatter {
	switch f {
	case Text:
		return TextFormatter{}
	case CSV:
		return CSVFormatter{Header: "value"}
	case JSON:
		return JSONFormatter{}
	case Binary:
		return BinaryFormatter{}
	}
	panic("output: unknown format")
}

// render writes one sample value the way the sequence's type demands:
// integer-valued sequences print without a fractional part.
func render(v float64, integer bool) string {
	if integer {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
