// Package writer provides the validated configuration bundle for the
// stream-segment writer: the component that aggregates operations from the
// upstream log and flushes them to durable storage.
//
// Configuration is constructed exactly once per load:
//
//	src, err := properties.FromJSON(raw)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cfg, err := writer.New(src)
//	if err != nil {
//		log.Fatal(err) // configuration errors are fatal to startup
//	}
//
//	batch := cfg.MaxItemsToReadAtOnce()
//
// Every recognized property has a documented default, so an empty source
// is valid and yields the default bundle. A present value that fails typed
// parsing, or a resolved value that violates an invariant, aborts the load
// with no Config produced; there is no partially constructed state.
//
// A successfully constructed Config is immutable and may be read from any
// number of goroutines without synchronization. Reload is modeled as
// loading a fresh Config and swapping it into a Holder.
package writer
