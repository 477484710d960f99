// Package dump serialises a checked global environment to a
// JSON-style debugging format.
package dump

import (
	"encoding/json"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/funvibe/proofcheck/internal/environment"
	"github.com/funvibe/proofcheck/internal/kernel"
)

// Node is the recursive, tag-and-fields JSON shape for one kernel
// expression. The schema is advisory — it exists to help
// a human or a script inspect a checked environment, not as a
// stable wire format.
type Node struct {
	Tag   string `json:"tag"`
	Name  string `json:"name,omitempty"`  // Ident
	Index int    `json:"index,omitempty"` // Ref
	Fun   *Node  `json:"fun,omitempty"`   // App
	Arg   *Node  `json:"arg,omitempty"`   // App
	Head  *Node  `json:"head,omitempty"`  // Lambda, Pi
	Body  *Node  `json:"body,omitempty"`  // Lambda
	Tail  *Node  `json:"tail,omitempty"`  // Pi
}

// Expr converts a kernel.Expr into its serialisable Node.
func Expr(e kernel.Expr) *Node {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *kernel.Ident:
		return &Node{Tag: "Ident", Name: n.Name}
	case *kernel.Ref:
		return &Node{Tag: "Ref", Index: n.Index}
	case *kernel.App:
		return &Node{Tag: "App", Fun: Expr(n.Fun), Arg: Expr(n.Arg)}
	case *kernel.Lambda:
		return &Node{Tag: "Lambda", Head: Expr(n.Head), Body: Expr(n.Body)}
	case *kernel.Pi:
		return &Node{Tag: "Pi", Head: Expr(n.Head), Tail: Expr(n.Tail)}
	case *kernel.ErrorSentinel:
		return &Node{Tag: "Error"}
	case *kernel.SorrySentinel:
		return &Node{Tag: "Sorry"}
	default:
		return &Node{Tag: "Unknown"}
	}
}

// Declaration is one entry of the dumped environment; Def is omitted
// for axioms.
type Declaration struct {
	Ty  *Node `json:"ty"`
	Def *Node `json:"def,omitempty"`
}

// Document is the top-level shape written to dump.json.
type Document struct {
	RunID        string                  `json:"run_id"`
	CheckedAt    string                  `json:"checked_at"`
	Declarations map[string]Declaration `json:"declarations"`
}

// Build renders env into a Document. now is formatted with an
// strftime pattern rather than time.Format's reference-date layout.
func Build(env *environment.Environment, runID string, now time.Time) *Document {
	doc := &Document{
		RunID:        runID,
		CheckedAt:    strftime.Format("%Y-%m-%dT%H:%M:%S%z", now),
		Declarations: make(map[string]Declaration, len(env.Order)),
	}
	for _, name := range env.Order {
		d, ok := env.Get(name)
		if !ok {
			continue
		}
		doc.Declarations[name] = Declaration{Ty: Expr(d.Ty), Def: Expr(d.Def)}
	}
	return doc
}

// Marshal renders doc as indented JSON.
func Marshal(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
