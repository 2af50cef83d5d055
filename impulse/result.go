package impulse

// LoadResult records the outcome of loading an impulse response.
type LoadResult int

// Load outcomes.
const (
	LoadSuccess LoadResult = iota
	LoadErrorOpening
	LoadErrorInvalidFile
	LoadErrorNotMono
	LoadErrorUnsupportedFormat
	LoadErrorUnsupportedBitsPerSample
	LoadErrorEmpty
	LoadErrorOther
)

// String returns a human-readable name for the result.
func (r LoadResult) String() string {
	switch r {
	case LoadSuccess:
		return "success"
	case LoadErrorOpening:
		return "error opening file"
	case LoadErrorInvalidFile:
		return "invalid WAV file"
	case LoadErrorNotMono:
		return "not mono"
	case LoadErrorUnsupportedFormat:
		return "unsupported audio format"
	case LoadErrorUnsupportedBitsPerSample:
		return "unsupported bits per sample"
	case LoadErrorEmpty:
		return "no samples"
	case LoadErrorOther:
		return "other error"
	default:
		return "unknown"
	}
}

// OK reports whether the load succeeded.
func (r LoadResult) OK() bool {
	return r == LoadSuccess
}
