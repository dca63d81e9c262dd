// Package graphfile reads and writes graph documents and expands graph
// presets.
//
// A document lists nodes in order, then weighted undirected edges:
//
//	nodes: [A, B, C]
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: B, to: C, weight: 2}
//
// Node and edge order is preserved, so engines see neighbors in document
// order. Validation reports every problem of a document at once.
package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepwise/core"
)

// ErrInvalidDocument wraps every validation failure of a document.
var ErrInvalidDocument = errors.New("graphfile: invalid document")

// EdgeDoc is one edge entry.
type EdgeDoc struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// Document is the YAML form of a graph.
type Document struct {
	Nodes []string  `yaml:"nodes"`
	Edges []EdgeDoc `yaml:"edges"`
}

// Load reads and decodes the document at path.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a document from r and builds the graph it describes.
func Decode(r io.Reader) (*core.Graph, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("graphfile: parse: %w", err)
	}

	return doc.Graph()
}

// Validate reports every structural problem of d.
func (d Document) Validate() error {
	var result *multierror.Error
	declared := make(map[string]bool, len(d.Nodes))
	for i, id := range d.Nodes {
		switch {
		case id == "":
			result = multierror.Append(result, fmt.Errorf("nodes[%d]: empty id", i))
		case declared[id]:
			result = multierror.Append(result, fmt.Errorf("nodes[%d]: duplicate node %q", i, id))
		}
		declared[id] = true
	}

	pairs := make(map[[2]string]int, len(d.Edges))
	for i, e := range d.Edges {
		for _, end := range []string{e.From, e.To} {
			if !declared[end] {
				result = multierror.Append(result, fmt.Errorf("edges[%d]: undeclared node %q", i, end))
			}
		}
		if e.From == e.To {
			result = multierror.Append(result, fmt.Errorf("edges[%d]: self-loop on %q", i, e.From))
			continue
		}
		if e.Weight <= 0 {
			result = multierror.Append(result, fmt.Errorf("edges[%d]: weight must be positive, got %d", i, e.Weight))
		}
		key := [2]string{e.From, e.To}
		if e.To < e.From {
			key = [2]string{e.To, e.From}
		}
		if j, dup := pairs[key]; dup {
			result = multierror.Append(result, fmt.Errorf("edges[%d]: duplicates edges[%d] %s-%s", i, j, e.From, e.To))
			continue
		}
		pairs[key] = i
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return nil
}

// Graph validates d and builds a core.Graph from it.
func (d Document) Graph() (*core.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	g := core.NewGraph()
	for _, id := range d.Nodes {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("graphfile: %w", err)
		}
	}
	for _, e := range d.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphfile: %w", err)
		}
	}

	return g, nil
}

// FromGraph returns the document describing g.
func FromGraph(g *core.Graph) Document {
	doc := Document{Nodes: g.Vertices()}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeDoc{From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc
}

// Encode writes g as a YAML document.
func Encode(w io.Writer, g *core.Graph) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}
	_, err := w.Write(buf.Bytes())

	return err
}
