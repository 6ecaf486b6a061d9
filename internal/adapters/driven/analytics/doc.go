// Package analytics implements driven.EventSink.
//
// HTTPSink posts events as JSON to a collector endpoint, forwarding the
// attribution bundle as query parameters. LogSink writes events to the
// diagnostic logger and is used when no endpoint is configured.
package analytics
