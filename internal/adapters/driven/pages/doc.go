// Package pages implements the page reader ports: an HTTP fetcher, a
// goquery-based main content extractor, and an html-to-markdown converter.
package pages
