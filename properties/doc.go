// Package properties provides namespace-scoped key/value configuration
// sources and typed property extraction.
//
// A Source is a flat string-to-string lookup. Components never consume a
// Source directly; they bind it to their namespace with New and read typed
// values through Properties:
//
//	props := properties.New(src, "writer")
//	batch, err := props.Int32Default("maxItemsToReadAtOnce", 100)
//
// Sources can be built from in-memory maps, JSON or YAML document bytes
// (nested objects flatten into dotted keys), or the process environment.
// Layered combines sources with later layers taking precedence, the usual
// base-file-plus-overrides deployment shape:
//
//	src := properties.Layered(
//		defaults,
//		fileSource,
//		properties.FromEnv("SEGMENTSTORE"),
//	)
//
// Absent keys resolve to the caller's default (or a missing-property error
// for the no-default accessors). Present keys that fail typed parsing are
// always an error; a typo in a deployed value must surface at load time,
// not silently become a default.
package properties
