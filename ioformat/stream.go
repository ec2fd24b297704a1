package ioformat

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrNoMatchingDocument indicates the stream was exhausted without a
// document matching the requested kind (and id, if non-empty).
var ErrNoMatchingDocument = errors.New("ioformat: no document in the stream matched the requested kind/id")

// ErrConfigInvalid indicates a decoded document's fields are structurally
// inconsistent: an Instance naming both or neither of Noise/Custom as its
// grid's obstacle source (spec.md §7).
var ErrConfigInvalid = errors.New("ioformat: document has an inconsistent grid configuration")

// LoadDocument scans the multi-document YAML stream r for the first
// document whose "kind" field equals wantKind and, if id is non-empty,
// whose "id" field equals id, then decodes that document into out.
//
// Grounded on original_source/solver/args.rs's
// `for document in serde_yaml::Deserializer::from_str(...)` loop: each
// candidate document is probed once for its discriminator before being
// decoded into the caller's concrete type, so a document that happens not
// to match never has to parse successfully against out's shape.
func LoadDocument(r io.Reader, wantKind, id string, out interface{}) error {
	dec := yaml.NewDecoder(r)
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return ErrNoMatchingDocument
			}
			return err
		}

		var probe struct {
			Kind string `yaml:"kind"`
			ID   string `yaml:"id"`
		}
		if err := doc.Decode(&probe); err != nil {
			continue
		}
		if probe.Kind != wantKind {
			continue
		}
		if id != "" && probe.ID != id {
			continue
		}

		return doc.Decode(out)
	}
}

// WriteDocument encodes doc as a single YAML document to w.
func WriteDocument(w io.Writer, doc interface{}) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(doc)
}
