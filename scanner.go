package recscan

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultPath is the record file read by the maxweight command.
const DefaultPath = "data.bin"

// Config for a Scanner
type Config struct {
	// Logger receives debug entries for conditions the scanner recovers from (open failure, dropped fragments).
	// default = NoopLogger()
	Logger *Logger
}

// Validate validates the config
func (c Config) Validate() error {
	if c.Logger == nil {
		return ErrNilLogger
	}
	return nil
}

// Scanner reads record files. Every failure while reading is treated as the end of the data.
type Scanner struct {
	log *Logger
}

// NewScanner creates a Scanner from the given config. Unset fields are replaced by their defaults.
func NewScanner(config Config) (*Scanner, error) {
	if config.Logger == nil {
		config.Logger = NoopLogger()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Scanner{log: config.Logger}, nil
}

var defaultScanner = &Scanner{log: NoopLogger()}

// Load reads all complete records of the file at path using a scanner with the default config.
func Load(path string) []Record {
	return defaultScanner.Load(path)
}

// LoadFrom reads all complete records from r using a scanner with the default config.
func LoadFrom(r io.Reader) []Record {
	return defaultScanner.LoadFrom(r)
}

// Load reads all complete records of the file at path in file order.
// A file that can't be opened yields no records.
func (s *Scanner) Load(path string) []Record {
	log := s.log.WithPath(path)

	file, err := os.Open(path)
	if err != nil {
		log.Debug("can't open record file", "error", err)
		return nil
	}
	defer file.Close()

	size, err := fileSize(file)
	if err != nil {
		log.Debug("no capacity hint", "error", err)
		size = 0
	}

	return s.load(log, file, int(size/RecordLength))
}

// LoadFrom reads all complete records from r in order.
// Reading stops at the first failed or short read; a trailing fragment is dropped.
func (s *Scanner) LoadFrom(r io.Reader) []Record {
	return s.load(s.log, r, 0)
}

func (s *Scanner) load(log *Logger, r io.Reader, capacity int) []Record {
	var records []Record
	if capacity > 0 {
		records = make([]Record, 0, capacity)
	}

	_raw := make([]byte, RecordLength)
	for {
		n, err := io.ReadFull(r, _raw)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
			case errors.Is(err, io.ErrUnexpectedEOF):
				log.Debug("dropped trailing fragment", "bytes", n, "records", len(records))
			default:
				log.Debug("read failed", "error", err, "records", len(records))
			}
			return records
		}

		record := Record{}
		record.decode(_raw)
		records = append(records, record)
	}
}

// FindMax returns the first record with the greatest weight.
// The search starts from the zero record, so an empty slice (or one without a positive weight) returns Record{}.
func FindMax(records []Record) Record {
	maxRecord := Record{Number: 0, Weight: 0}
	for _, r := range records {
		if r.Weight > maxRecord.Weight {
			maxRecord = r
		}
	}
	return maxRecord
}

// Format returns the number immediately followed by the weight.
func Format(record Record) string {
	return record.String()
}

// Report writes the formatted record to w without separator or trailing newline.
func Report(w io.Writer, record Record) error {
	if _, err := io.WriteString(w, Format(record)); err != nil {
		return fmt.Errorf("can't write report: %w", err)
	}
	return nil
}

// WriteTo encodes records to w in the record file layout.
func WriteTo(w io.Writer, records []Record) error {
	_raw := make([]byte, RecordLength*len(records))
	for i, r := range records {
		r.encode(_raw[i*RecordLength : (i+1)*RecordLength])
	}
	if _, err := w.Write(_raw); err != nil {
		return fmt.Errorf("can't write records: %w", err)
	}
	return nil
}
