// Package dataset loads the JSON and YAML documents enumq runs its queries on.
//
// JSON is read through the YAML decoder, as every JSON document is also valid YAML 1.2.
// A stream can hold several documents separated by "---".
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/enumkit/enumkit/pkg/errorkit"
	"github.com/enumkit/enumkit/pkg/iterkit"
)

// Stdin is the file name which stands for the standard input.
const Stdin = "-"

const ErrUnknownFormat errorkit.Error = "unknown output format"

// Document is a decoded document of a stream.
type Document struct {
	// Name is the file the document came from.
	Name string
	// Index is the position of the document in its stream, starting at zero.
	Index int
	Value any
}

// Kind classifies the document value as a query source.
// Sequences and strings are array-like, mappings are keyed, other values are scalars.
func (d Document) Kind() iterkit.SourceKind {
	return iterkit.Classify(d.Value)
}

func (d Document) String() string {
	return fmt.Sprintf("%s#%d", d.Name, d.Index)
}

// Decode reads every document of the stream.
// An empty stream has no documents.
func Decode(r io.Reader, name string) ([]Document, error) {
	dec := yaml.NewDecoder(r)
	var docs []Document
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decoding %s document %d: %w", name, len(docs), err)
		}
		docs = append(docs, Document{Name: name, Index: len(docs), Value: v})
	}
}

// Loader opens the named files, reading Stdin from its In reader.
type Loader struct {
	In io.Reader
}

// Load decodes the documents of every file in order.
func (l Loader) Load(names ...string) ([]Document, error) {
	var docs []Document
	for _, name := range names {
		ds, err := l.load(name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, ds...)
	}
	return docs, nil
}

func (l Loader) load(name string) ([]Document, error) {
	if name == Stdin {
		in := l.In
		if in == nil {
			in = os.Stdin
		}
		return Decode(in, name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, name)
}

// Format is an output encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates the name of an output format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case JSON, YAML:
		return f, nil
	default:
		return "", ErrUnknownFormat.F("%q, expected %q or %q", s, JSON, YAML)
	}
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Encode writes v to w in the format.
// JSON output is indented and newline terminated.
func Encode(w io.Writer, f Format, v any) error {
	v = Plain(v)
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return ErrUnknownFormat.F("%q", f)
	}
}

// Plain converts query results into values both encoders understand.
// KV pairs become {key, value} mappings, runes of a string document become one character strings,
// and mappings with non string keys get string keys.
func Plain(v any) any {
	switch v := v.(type) {
	case rune:
		return string(v)
	case iterkit.KV[any, any]:
		return map[string]any{"key": Plain(v.K), "value": Plain(v.V)}
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = Plain(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = Plain(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[fmt.Sprint(k)] = Plain(e)
		}
		return out
	default:
		return v
	}
}
