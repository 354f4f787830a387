package naics

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// DescriptionUnknown is returned for empty or missing codes.
	DescriptionUnknown = "Unknown"
	// DescriptionNotFound is returned when no prefix of the code exists in the hierarchy.
	DescriptionNotFound = "NAICS description not found"
)

// minPrefixLen is the sector level, the shortest meaningful NAICS prefix.
const minPrefixLen = 2

// Node is one entry of the nested hierarchy document.
type Node struct {
	Code           string           `json:"code"`
	Title          string           `json:"title"`
	IsRange        bool             `json:"is_range"`
	AlternateCodes []string         `json:"alternate_codes"`
	Children       map[string]*Node `json:"children"`
}

// Resolver answers code-to-description queries against a loaded hierarchy.
// It is read-only after construction.
type Resolver struct {
	index map[string]string
}

// Load reads and parses the hierarchy document at path and builds the resolver.
// The document must be the nested tree produced by the upstream NAICS parser;
// anything else is a fatal configuration error for the caller.
func Load(path string) (*Resolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read NAICS hierarchy: %w", err)
	}
	return Parse(data)
}

// Parse builds a Resolver from the raw hierarchy document.
func Parse(data []byte) (*Resolver, error) {
	var root Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse NAICS hierarchy: %w", err)
	}
	if len(root.Children) == 0 {
		return nil, fmt.Errorf("NAICS hierarchy is not a nested tree (no children under %q)", root.Code)
	}

	r := &Resolver{index: make(map[string]string)}
	r.flatten(&root)
	return r, nil
}

// flatten walks the tree and indexes every node by its cleaned code.
// Range sectors ("44-45") also register their individual alias codes, but an
// alias never shadows a node that owns the code directly.
func (r *Resolver) flatten(n *Node) {
	if n.Code != "" && n.Code != "ROOT" {
		r.index[cleanCode(n.Code)] = n.Title
		for _, alt := range n.AlternateCodes {
			alt = cleanCode(alt)
			if _, exists := r.index[alt]; !exists {
				r.index[alt] = n.Title
			}
		}
	}
	for _, child := range n.Children {
		r.flatten(child)
	}
}

// Size returns the number of indexed codes.
func (r *Resolver) Size() int {
	return len(r.index)
}

// Lookup returns the description of the longest known prefix of code.
// It never fails: empty input yields DescriptionUnknown, and a code with no
// known prefix of at least two characters yields DescriptionNotFound.
func (r *Resolver) Lookup(code string) string {
	c := Normalize(code)
	if c == "" {
		return DescriptionUnknown
	}

	if title, ok := r.index[c]; ok {
		return title
	}
	for l := len(c) - 1; l >= minPrefixLen; l-- {
		if title, ok := r.index[c[:l]]; ok {
			return title
		}
	}
	return DescriptionNotFound
}

// Normalize prepares a raw code for lookup. Numeric values, including floats
// like "311221.0" coming from spreadsheet exports, collapse to their integer
// string. Non-numeric codes are treated as opaque strings with separators
// stripped.
func Normalize(code string) string {
	c := strings.TrimSpace(code)
	if c == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(c, 64); err == nil {
		return strconv.FormatInt(int64(f), 10)
	}
	return cleanCode(c)
}

func cleanCode(code string) string {
	c := strings.TrimSpace(code)
	c = strings.ReplaceAll(c, ",", "")
	return strings.ReplaceAll(c, " ", "")
}
