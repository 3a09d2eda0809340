// Package domain defines the core journaling entities for LifeOS.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawEntry: A journal document waiting in the inbox
//   - Analysis: The analyzer's structured view of an entry
//   - ParsedSections: The project/life split of an entry's text
//   - Task: An actionable item mined from an entry
//   - ArchiveRecord: A durable row of the compacted archive
//   - SystemState: The aggregate derived from the whole archive
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
