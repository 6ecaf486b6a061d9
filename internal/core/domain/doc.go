// Package domain defines the core entities for docsearch.
//
// This package is the innermost layer of the hexagon. It has NO external
// dependencies and defines the fundamental types:
//
//   - Hit: A single search result returned by the search provider
//   - SearchRequest / SearchResponse: The provider's batch query contract
//   - Mode: The overlay interaction mode (search or ask-ai)
//   - Navigation: Where a selected result should take the user
//   - Settings: Provider credentials, site origin and feature switches
//   - Event / Attribution: Analytics payloads and session attribution
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
