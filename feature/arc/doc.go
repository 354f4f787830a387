// Package arc exposes the ARC hierarchy for browsing.
//
// # HTTP Endpoints
//
//   - GET /arc/:code : the hierarchy subtree rooted at an ARC code, e.g.
//     /arc/2.11 returns the node for "2.11" with its children.
package arc
