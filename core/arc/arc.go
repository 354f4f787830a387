package arc

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode"
)

const (
	// DescriptionUnknown is returned for empty or missing codes.
	DescriptionUnknown = "Unknown"
	// DescriptionNotFound is returned when the code is absent from the document.
	DescriptionNotFound = "ARC description not found"
)

// Node is one entry of the nested ARC hierarchy. Every digit of a code adds
// one level, so "4.811" sits under "4.81" under "4.8" under "4".
type Node struct {
	Code        string           `json:"code"`
	Description *string          `json:"description"`
	Children    map[string]*Node `json:"children"`
}

// document is the on-disk shape produced by the upstream ARC parser.
type document struct {
	Hierarchy map[string]*Node  `json:"arc_hierarchy"`
	Codes     map[string]string `json:"arc_codes"`
}

// Resolver answers ARC code queries. Read-only after construction.
type Resolver struct {
	hierarchy map[string]*Node
	codes     map[string]string
}

// Load reads and parses the ARC hierarchy document at path.
func Load(path string) (*Resolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ARC hierarchy: %w", err)
	}
	return Parse(data)
}

// Parse builds a Resolver from the raw ARC document.
func Parse(data []byte) (*Resolver, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse ARC hierarchy: %w", err)
	}
	if len(doc.Codes) == 0 && len(doc.Hierarchy) == 0 {
		return nil, fmt.Errorf("ARC document carries neither arc_codes nor arc_hierarchy")
	}
	return &Resolver{hierarchy: doc.Hierarchy, codes: doc.Codes}, nil
}

// Description returns the flat description for an ARC code.
func (r *Resolver) Description(code string) string {
	c := strings.TrimSpace(code)
	if c == "" {
		return DescriptionUnknown
	}
	if desc, ok := r.codes[c]; ok {
		return desc
	}
	return DescriptionNotFound
}

// Subtree walks the hierarchy by digit precision and returns the node for
// code ("2" is a top-level category, "2.11" its grandchild). The boolean is
// false when no node exists at that precision.
func (r *Resolver) Subtree(code string) (*Node, bool) {
	code = strings.TrimSpace(code)
	var digits []rune
	for _, ch := range code {
		if unicode.IsDigit(ch) {
			digits = append(digits, ch)
		}
	}
	if len(digits) == 0 {
		return nil, false
	}

	node, ok := r.hierarchy[string(digits[0])]
	if !ok {
		return nil, false
	}
	if len(digits) == 1 {
		return node, true
	}

	level := node.Children
	prefix := string(digits[0]) + "."
	for _, d := range digits[1:] {
		prefix += string(d)
		if n, ok := level[code]; ok {
			return n, true
		}
		next, ok := level[prefix]
		if !ok {
			return nil, false
		}
		level = next.Children
	}
	return nil, false
}

// Flatten collects code-to-description pairs for a node and all of its
// descendants. A nil node flattens to an empty map.
func Flatten(n *Node) map[string]string {
	out := make(map[string]string)
	flattenInto(n, out)
	return out
}

// FlattenAll collects code-to-description pairs for the entire hierarchy.
func (r *Resolver) FlattenAll() map[string]string {
	out := make(map[string]string)
	for _, n := range r.hierarchy {
		flattenInto(n, out)
	}
	return out
}

func flattenInto(n *Node, out map[string]string) {
	if n == nil {
		return
	}
	if n.Code != "" {
		desc := ""
		if n.Description != nil {
			desc = *n.Description
		}
		out[n.Code] = desc
	}
	for _, child := range n.Children {
		flattenInto(child, out)
	}
}
