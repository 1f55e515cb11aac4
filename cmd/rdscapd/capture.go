package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"

	"github.com/openwebrx/redsea-go/rds"
)

// CaptureWriter appends decoded groups to a gzip-compressed ASCII
// capture log (spec §6's hex format), rotating to a new file once
// rotateEveryMiB of uncompressed text has been written to the current one.
type CaptureWriter struct {
	dir            string
	rotateEveryMiB int

	file    *os.File
	gz      *gzip.Writer
	buf     *bufio.Writer
	written int64
}

// NewCaptureWriter opens (creating if necessary) the capture directory
// and starts its first rotation.
func NewCaptureWriter(dir string, rotateEveryMiB int) (*CaptureWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("rdscapd: couldn't create capture dir: %w", err)
	}
	w := &CaptureWriter{dir: dir, rotateEveryMiB: rotateEveryMiB}
	if err := w.rotate(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *CaptureWriter) rotate() error {
	if w.gz != nil {
		w.buf.Flush()
		w.gz.Close()
		w.file.Close()
	}

	name := fmt.Sprintf("rds-%s-%s.txt.gz", time.Now().UTC().Format("20060102T150405Z"), uuid.NewString()[:8])
	f, err := os.Create(filepath.Join(w.dir, name))
	if err != nil {
		return fmt.Errorf("rdscapd: couldn't create capture file: %w", err)
	}

	w.file = f
	w.gz = gzip.NewWriter(f)
	w.buf = bufio.NewWriter(w.gz)
	w.written = 0
	log.Printf("[INFO] capture: rotated to %s", name)
	return nil
}

// WriteGroup appends one group's hex representation as a line, rotating
// first if more than rotateEveryMiB of uncompressed text has already gone
// into the current file.
func (w *CaptureWriter) WriteGroup(g rds.Group) error {
	if w.written > int64(w.rotateEveryMiB)<<20 {
		if err := w.rotate(); err != nil {
			return err
		}
	}

	line := rds.HexString(g) + "\n"
	n, err := w.buf.WriteString(line)
	w.written += int64(n)
	return err
}

// Close flushes and closes the current capture file.
func (w *CaptureWriter) Close() error {
	if w.gz == nil {
		return nil
	}
	if err := w.buf.Flush(); err != nil {
		return err
	}
	if err := w.gz.Close(); err != nil {
		return err
	}
	return w.file.Close()
}
