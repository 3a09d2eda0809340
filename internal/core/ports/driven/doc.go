// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the pipeline to function:
//
//   - Inbox: Pending entry storage (Markdown body + JSON sidecar)
//   - LogStore: Append-only per-topic log files
//   - ArchiveStore: Columnar archive persistence
//   - ArchiveExporter: JSON interchange export
//   - StatusStore: System state and next-action reports
//   - StateDeriver: Aggregate state over the archive
//   - EntryParser, TaskExtractor: Dual-track text heuristics
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the pipeline degrades gracefully:
//
//   - RouteIndex: Exact duplicate check. Without it only the tail scan is used.
//   - Analyzer: Entry analysis. Without it, regex task extraction is used.
//   - EmbeddingService: Entry vectors. Without it, vectors are empty.
//   - TaskSink: Task delivery. Without one, task sync reports ErrNoTaskSink.
//   - RateLimiter: Pacing between sink calls.
package driven
