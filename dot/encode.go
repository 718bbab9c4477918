// SPDX-License-Identifier: MIT

// Package dot - core.Graph → DOT text rendering.

package dot

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/korvyl/gmat/core"
)

// bareID matches identifiers that render without quoting.
var bareID = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*|[-+]?(\d+(\.\d*)?|\.\d+))$`)

// Marshal renders a graph as a DOT document.
// Implementation:
//   - Stage 1: reject nil graphs; decide the header. strict is emitted
//     exactly when the graph has no parallel-edge capability and no
//     self-loops; digraph when directed.
//   - Stage 2: render the reserved default blocks ("graph", "node",
//     "edge") when present, keys sorted.
//   - Stage 3: render every node in insertion order (isolated nodes must
//     survive a round-trip), then every edge with its attribute block.
//
// Errors: ErrGraphNil.
// Complexity: O(V + E + attrs), deterministic output.
func Marshal(g *core.Graph) ([]byte, error) {
	s, err := MarshalString(g)
	if err != nil {
		return nil, err
	}

	return []byte(s), nil
}

// MarshalString is Marshal returning a string.
func MarshalString(g *core.Graph) (string, error) {
	if g == nil {
		return "", fmt.Errorf("dot.Marshal: %w", ErrGraphNil)
	}

	directed := g.Directed()
	op := "--"
	kind := "graph"
	if directed {
		op = "->"
		kind = "digraph"
	}

	var b strings.Builder
	if !g.Multigraph() && g.NumberOfSelfLoops() == 0 {
		b.WriteString("strict ")
	}
	b.WriteString(kind)
	if name := g.Name(); name != "" {
		b.WriteByte(' ')
		b.WriteString(quoteID(name))
	}
	b.WriteString(" {\n")

	for _, target := range []string{attrKeyGraph, attrKeyNode, attrKeyEdge} {
		raw, ok := g.Attr(target)
		if !ok {
			continue
		}
		defaults, ok := raw.(map[string]any)
		if !ok || len(defaults) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\t%s %s;\n", target, attrBlock(defaults))
	}

	for _, id := range g.Nodes() {
		attrs, _ := g.NodeAttrs(id)
		b.WriteByte('\t')
		b.WriteString(quoteID(id))
		if len(attrs) > 0 {
			b.WriteByte(' ')
			b.WriteString(attrBlock(attrs))
		}
		b.WriteString(";\n")
	}

	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "\t%s %s %s", quoteID(e.From), op, quoteID(e.To))
		if len(e.Attrs) > 0 {
			b.WriteByte(' ')
			b.WriteString(attrBlock(e.Attrs))
		}
		b.WriteString(";\n")
	}
	b.WriteString("}\n")

	return b.String(), nil
}

// attrBlock renders an attribute map as "[k=v, ...]" with sorted keys.
func attrBlock(attrs map[string]any) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('[')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteID(k))
		b.WriteByte('=')
		b.WriteString(quoteID(formatValue(attrs[k])))
	}
	b.WriteByte(']')

	return b.String()
}

// formatValue renders an attribute value as DOT text. Floats use the
// shortest exact representation so numeric values survive a round-trip.
func formatValue(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'g', -1, 32)
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case bool:
		return strconv.FormatBool(n)
	default:
		return fmt.Sprintf("%v", n)
	}
}

// quoteID renders an identifier, quoting and escaping unless it is a bare
// DOT identifier or numeral.
func quoteID(id string) string {
	if bareID.MatchString(id) {
		return id
	}
	escaped := strings.ReplaceAll(strings.ReplaceAll(id, `\`, `\\`), `"`, `\"`)

	return `"` + escaped + `"`
}
