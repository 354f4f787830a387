// Package naics resolves NAICS industry codes to their descriptions.
//
// The hierarchy is loaded once at startup from the JSON document exported by
// the upstream Census parser and flattened into a code index. It is immutable
// afterwards, so a single Resolver is safe to share across requests.
//
// # Lookup
//
// Lookup performs a longest-matching-prefix search: an exact match wins,
// otherwise trailing digits are dropped one at a time down to the 2-digit
// sector level. Range sectors like "44-45" are reachable through their
// individual alias codes ("44", "45"). Lookup never fails; inputs without any
// known prefix resolve to DescriptionNotFound.
//
// # Usage
//
//	resolver, err := naics.Load(cfg.Path)
//	if err != nil {
//	    log.Fatal("NAICS hierarchy unavailable", err)
//	}
//	desc := resolver.Lookup("311221") // "Starch Manufacturing"
package naics
