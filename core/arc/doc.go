// Package arc resolves Assessment Recommendation Codes (ARC) against the
// hierarchy document produced by the upstream ARC parser.
//
// The document carries two views of the same data: a flat code-to-description
// map ("arc_codes") used for cheap lookups, and a nested tree ("arc_hierarchy")
// where every digit of a code is one level (4.811 under 4.81 under 4.8 under 4).
//
// Like the NAICS resolver, the document is loaded once at startup and is
// read-only afterwards.
package arc
