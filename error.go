package recscan

import "errors"

var (
	// ErrShortRecord is returned when fewer than RecordLength bytes are available to decode a record.
	ErrShortRecord = errors.New("not enough bytes to create a record")
	// ErrNilLogger is returned by Config.Validate when no logger is set.
	ErrNilLogger = errors.New("logger must be set")
)
