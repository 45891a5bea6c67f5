//go:build legacyconn

package textcompat

// BufferingSupported reports whether connections built for this target accept
// a buffering hint on GetResponse.
const BufferingSupported = true
