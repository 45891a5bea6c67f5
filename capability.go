//go:build !legacyconn

package textcompat

// BufferingSupported reports whether connections built for this target accept
// a buffering hint on GetResponse. Build with -tags legacyconn to target
// connections that do.
const BufferingSupported = false
