package permutation

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// Format renders perm as one sink line without the trailing newline:
// "[a, b, c]", or "[]" for the empty permutation.
func Format(perm []string) string {
	return "[" + strings.Join(perm, ", ") + "]"
}

// pathWriter tags write failures with the output they came from, so a
// failing caller writer is not blamed on the file sink and vice versa.
type pathWriter struct {
	path string
	w    io.Writer
}

func (p pathWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	if err != nil {
		return n, &SinkWriteError{Path: p.path, Err: err}
	}
	return n, nil
}

// asSinkError keeps an already tagged failure and tags anything else
// with path.
func asSinkError(path string, err error) error {
	var sw *SinkWriteError
	if errors.As(err, &sw) {
		return err
	}
	return &SinkWriteError{Path: path, Err: err}
}

// sink fans one permutation out to the configured outputs.
// The zero value discards everything.
type sink struct {
	path   string
	file   *os.File
	w      *bufio.Writer
	onEmit func([]string) error
}

// openSink acquires the outputs named by o. A file that cannot be created is
// reported as *SinkWriteError before anything is generated.
func openSink(o Options) (*sink, error) {
	s := &sink{path: o.SinkPath, onEmit: o.OnEmit}

	var writers []io.Writer
	if o.SinkPath != "" {
		f, err := os.Create(o.SinkPath)
		if err != nil {
			return nil, &SinkWriteError{Path: o.SinkPath, Err: err}
		}
		s.file = f
		writers = append(writers, pathWriter{path: o.SinkPath, w: f})
	}
	if o.Writer != nil {
		writers = append(writers, pathWriter{w: o.Writer})
	}
	switch len(writers) {
	case 0:
	case 1:
		s.w = bufio.NewWriter(writers[0])
	default:
		s.w = bufio.NewWriter(io.MultiWriter(writers...))
	}
	return s, nil
}

// write emits one line and then hands a copy to the OnEmit hook.
func (s *sink) write(perm []string) error {
	if s.w != nil {
		if _, err := s.w.WriteString(Format(perm)); err != nil {
			return asSinkError(s.path, err)
		}
		if err := s.w.WriteByte('\n'); err != nil {
			return asSinkError(s.path, err)
		}
	}
	if s.onEmit != nil {
		return s.onEmit(append([]string(nil), perm...))
	}
	return nil
}

// close flushes buffered lines and closes the file if one was opened.
// It is safe to call on every exit path; both failures are reported.
func (s *sink) close() error {
	var errs []error
	if s.w != nil {
		if err := s.w.Flush(); err != nil {
			errs = append(errs, asSinkError(s.path, err))
		}
	}
	if s.file != nil {
		if err := s.file.Close(); err != nil {
			errs = append(errs, &SinkWriteError{Path: s.path, Err: err})
		}
		s.file = nil
	}
	return errors.Join(errs...)
}
