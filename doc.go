// Package pravega provides the tunable-parameter layer for a log-structured
// segment store: component-scoped configuration sources, typed property
// extraction, and validated, immutable configuration bundles.
//
// # Architecture
//
// Configuration flows through three layers:
//
//	┌─────────────────────────────────────┐
//	│          properties                 │  Sources (map, JSON, YAML, env),
//	│  (sources, namespacing, parsing)    │  layering, typed extraction
//	└─────────────────────────────────────┘
//	           ↓ consumed by
//	┌─────────────────────────────────────┐
//	│            writer                   │  Load → default → validate →
//	│   (validated writer parameters)     │  immutable Config
//	└─────────────────────────────────────┘
//	           ↓ reported via
//	┌─────────────────────────────────────┐
//	│            errors                   │  Missing / format / constraint
//	│   (classification, wrapping)        │  taxonomy, errors.Is friendly
//	└─────────────────────────────────────┘
//
// Construction is a single-shot pure function: a source and a namespace go
// in, a fully validated immutable config (or an error) comes out. There is
// no refresh lifecycle; reload is expressed by constructing a new instance
// and swapping the reference held by the owner.
//
// This module performs no I/O of its own. Sources are built from in-memory
// maps, document bytes, or the process environment; reading files or remote
// stores is the concern of the embedding process.
package pravega
