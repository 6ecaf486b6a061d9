// Package algolia implements driven.SearchClient against the Algolia REST
// multi-query endpoint used by hosted docs search.
package algolia
