// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - SearchClient: Hosted search provider (Algolia multi-query API)
//   - ConfigStore: Application configuration
//   - SessionStore: Session-scoped key/value storage for attribution
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - EventSink: Analytics delivery. Without it, events are dropped.
//   - Clipboard: System clipboard. Without it, copy actions fail quietly.
//   - URLOpener: System browser. Without it, external navigation is a no-op.
//   - PageFetcher, ContentExtractor, MarkdownConverter: In-app page reader.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
