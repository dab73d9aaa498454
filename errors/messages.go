package errors

var messages = map[Errno]string{
	InvalidPixFormat:        "unrecognised pixel format (%d)",
	InvalidOutputDimensions: "invalid output dimensions (%dx%d)",
	OutputBufferTooSmall:    "output buffer too small: need %d bytes, got %d",
	InvalidSourceDimensions: "invalid source dimensions (%dx%d)",
}
