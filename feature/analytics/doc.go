// Package analytics serves aggregated views of the recommendation data.
//
// # HTTP Endpoints
//
//   - GET /recommendations : per-ARC averages computed in memory over all
//     recommendation rows, optionally restricted to an ARC precision subtree
//     and a set of fiscal years.
//   - GET /aggregates : per-ARC averages computed in SQL with center, state,
//     fiscal-year and ARC-prefix filters, formatted for the dashboard
//     ("$1,234", "12.3%").
//   - GET /filter-options : the distinct centers, states and fiscal years
//     available for filtering.
//
// All three use the success envelope {"success": true|false, ...} the
// dashboard expects.
package analytics
