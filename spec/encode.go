package spec

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/introspec-io/introspec/specerrors"
)

// Format selects the textual encoding of an assembled document.
type Format int

const (
	// FormatJSON encodes the document as indented JSON.
	FormatJSON Format = iota
	// FormatYAML encodes the document as YAML.
	FormatYAML
)

// MediaType returns the Content-Type value matching the format.
func (f Format) MediaType() string {
	if f == FormatYAML {
		return "text/x-yaml"
	}
	return MediaTypeJSON
}

// String returns the conventional short name of the format.
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// NegotiateFormat picks an output format from an Accept header value.
// Any mention of "yml" or "yaml" selects YAML; everything else, including an
// empty header, selects JSON.
func NegotiateFormat(accept string) Format {
	if strings.Contains(accept, "yml") || strings.Contains(accept, "yaml") {
		return FormatYAML
	}
	return FormatJSON
}

// Encode serializes the document in the requested format.
func Encode(doc *Document, f Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	default:
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("spec: %w: %w", specerrors.ErrEncode, err)
	}
	return data, nil
}
