package views

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"sync"
)

// CSVWriter is a buffered CSV writer used to persist simulation outputs.
// Writes are batch-oriented: a session writes every epoch of one product
// in a single pass, so flushing is deferred to Close rather than a timer.
// The mutex keeps the writer safe when the recording stage exports the
// three products concurrently into separate writers sharing helpers.
type CSVWriter struct {
	mu   sync.Mutex
	file *os.File
	buf  *bufio.Writer
	csv  *csv.Writer
	rows uint64
}

// NewCSVWriter opens (or creates) a file and writes the CSV header row.
func NewCSVWriter(path string, bufSizeBytes int, writeHeader bool, header []string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv create %s: %w", path, err)
	}

	if bufSizeBytes <= 0 {
		bufSizeBytes = 256 * 1024 // 256 KB default
	}

	bw := bufio.NewWriterSize(f, bufSizeBytes)
	cw := csv.NewWriter(bw)

	w := &CSVWriter{
		file: f,
		buf:  bw,
		csv:  cw,
	}

	if writeHeader && len(header) > 0 {
		if err := cw.Write(header); err != nil {
			f.Close()
			return nil, fmt.Errorf("csv write header: %w", err)
		}
	}

	return w, nil
}

// WriteRow appends a single CSV row. Thread-safe; encode errors are
// buffered and surfaced by Close.
func (w *CSVWriter) WriteRow(row []string) {
	w.mu.Lock()
	_ = w.csv.Write(row)
	w.rows++
	w.mu.Unlock()
}

// Close flushes remaining data and closes the file, reporting any write
// error the batch accumulated. A failed epoch file must not pass silently.
func (w *CSVWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("csv flush: %w", err)
	}
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("csv buffer flush: %w", err)
	}
	return w.file.Close()
}

// Rows returns the number of data rows written (excludes header).
func (w *CSVWriter) Rows() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rows
}
