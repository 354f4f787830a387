// Package payload serves the full dashboard payload.
//
// It joins the recommendations and assessments tables of the ITAC database and
// enriches every row with descriptions resolved from the NAICS and ARC
// hierarchies. The result is the flat JSON array the dashboard consumes.
//
// # HTTP Endpoints
//
//   - GET /all : every joined recommendation, enriched.
//   - GET /preview : the first rows of the same payload, for quick inspection.
//
// The pipeline is atomic: any failure while fetching or shaping rows aborts
// the request with a single error object, never a partial array.
package payload
