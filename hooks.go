package textcompat

// Hooks are lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking; a Normalizer calls them
// inline on every decode.
type Hooks interface {
	// Bytes were decoded under Replace or Ignore and count malformed
	// sequences were substituted or dropped.
	LossyDecode(encoding string, policy ErrorPolicy, count int)

	// A Strict decode failed. offset is -1 when the decoder cannot locate
	// the bad sequence.
	DecodeFailed(encoding string, offset int)

	// New was given an encoding label that no index recognizes.
	UnknownEncoding(label string)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) LossyDecode(string, ErrorPolicy, int) {}
func (NopHooks) DecodeFailed(string, int)             {}
func (NopHooks) UnknownEncoding(string)               {}
