// Package textcompat normalizes values to decoded text and carries the two
// small helpers that usually travel with it: a capability-gated response
// reader and an error re-raise helper.
//
// Components:
//   - Normalizer: Value (Bytes | Text | Other) -> string. Text is returned
//     as is, Bytes are decoded under an encoding and ErrorPolicy, Other is
//     rendered (see package render).
//   - ResponseReader: calls Conn.GetResponse, passing Buffering(true) only
//     when the build (tag legacyconn) or ReaderOptions enable it.
//   - Captured / Reraise: hold an error from its failure site and return it
//     later, unchanged, whatever failed in between.
//
// Normalization is idempotent:
//
//	s, _ := textcompat.ToUnicode([]byte{0xC3, 0xBF}) // "ÿ"
//	t, _ := textcompat.ToUnicode(s)                  // "ÿ", not decoded again
//
// Re-raise pattern:
//
//	c := textcompat.Capture(err)
//	cleanup() // may fail; record with c.Suppress
//	return c.Reraise()
package textcompat
