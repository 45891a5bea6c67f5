package util

import (
	"fmt"
	"strings"
)

// maxPreview bounds how many bytes an error message quotes.
const maxPreview = 8

// DescribeBytes renders b the way decode errors quote offending input:
// "byte 0xff" for one byte, "bytes 0xe2 0x82" for more, truncated with "...".
func DescribeBytes(b []byte) string {
	switch len(b) {
	case 0:
		return "empty input"
	case 1:
		return fmt.Sprintf("byte 0x%02x", b[0])
	}

	var sb strings.Builder
	sb.WriteString("bytes")
	for i, c := range b {
		if i == maxPreview {
			sb.WriteString(" ...")
			break
		}
		fmt.Fprintf(&sb, " 0x%02x", c)
	}
	return sb.String()
}

// NormalizeLabel canonicalizes an encoding label for alias lookup.
func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
