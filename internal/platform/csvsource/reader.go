// Package csvsource streams records from headered CSV files.
//
// Rows are returned with whatever number of fields they carry; deciding what
// to do with short or long rows is left to the caller. Stray quotes inside a
// field are kept as literal characters.
package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Record is one data row together with the line it started on.
type Record struct {
	Line   int
	Fields []string
}

type Reader struct {
	csv        *csv.Reader
	closer     io.Closer
	header     []string
	headerRead bool
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return &Reader{csv: cr}
}

// Open opens path for reading. The caller must Close the reader.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv %s: %w", path, err)
	}
	r := NewReader(f)
	r.closer = f
	return r, nil
}

// Header returns the header row, reading it if no record has been read yet.
// An empty input yields a nil header and no error.
func (r *Reader) Header() ([]string, error) {
	if err := r.readHeader(); err != nil {
		return nil, err
	}
	return r.header, nil
}

// Next returns the next data row, or io.EOF once the input is exhausted.
func (r *Reader) Next() (Record, error) {
	if err := r.readHeader(); err != nil {
		return Record{}, err
	}

	fields, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		return Record{}, fmt.Errorf("read csv record: %w", err)
	}

	line, _ := r.csv.FieldPos(0)
	return Record{Line: line, Fields: fields}, nil
}

func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

func (r *Reader) readHeader() error {
	if r.headerRead {
		return nil
	}
	r.headerRead = true

	header, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("read csv header: %w", err)
	}
	r.header = header
	return nil
}
