// SPDX-License-Identifier: MIT

// Package ingest reads the line-oriented shape text format and turns it
// into geom entities, collecting per-line failures instead of aborting.
//
// Format (one shape per line):
//
//	# comment
//	TRIANGLE x1 y1 x2 y2 x3 y3
//	PYRAMID  x1 y1 z1 x2 y2 z2 x3 y3 z3 x4 y4 z4 ax ay az
//
// The type tag is case-insensitive; lines with any other tag are skipped
// without being recorded. Blank and '#' lines are skipped. Trailing tokens
// past the required coordinates are ignored.
//
// Error policy:
//   - A source that cannot be read fails the whole call (*FileReadError).
//   - A bad line becomes a LineError in ParseResult.Errors; the run continues.
package ingest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvshape/factory"
	"github.com/katalvlaran/lvshape/geom"
)

// ErrFileRead matches every *FileReadError.
var ErrFileRead = errors.New("ingest: failed to read file")

// FileReadError reports an unreadable source.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("ingest: failed to read file %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() []error { return []error{ErrFileRead, e.Err} }

// LineError records one rejected line.
type LineError struct {
	LineNumber int    // 1-based
	Content    string // trimmed line text
	Err        error  // *factory.InvalidShapeDataError
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.LineNumber, e.Err)
}

// ParseResult holds everything a run produced.
type ParseResult struct {
	Triangles []*geom.Triangle
	Pyramids  []*geom.Pyramid
	// Shapes lists triangles and pyramids together in line order.
	Shapes []geom.Shape
	Errors []LineError
}

// Source reads a whole file.
type Source interface {
	ReadFile(path string) ([]byte, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(path string) ([]byte, error)

// ReadFile calls f(path).
func (f SourceFunc) ReadFile(path string) ([]byte, error) { return f(path) }

// OSSource reads from the local file system.
type OSSource struct{}

// ReadFile wraps os.ReadFile.
func (OSSource) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// Option configures a Reader.
type Option func(*Reader)

// WithSource replaces the file system source.
func WithSource(s Source) Option {
	return func(r *Reader) {
		if s != nil {
			r.src = s
		}
	}
}

// WithFactory replaces the shape factory.
func WithFactory(f *factory.Factory) Option {
	return func(r *Reader) {
		if f != nil {
			r.factory = f
		}
	}
}

// WithLogger sets the logger for progress and skipped lines.
func WithLogger(l *zap.Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.log = l
		}
	}
}

// Reader parses shape files. It holds no per-run state.
type Reader struct {
	src     Source
	factory *factory.Factory
	log     *zap.Logger
}

// New returns a Reader over OSSource with a silent factory.
func New(opts ...Option) *Reader {
	r := &Reader{
		src:     OSSource{},
		factory: factory.New(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadShapesFromFile reads path with a default Reader.
func ReadShapesFromFile(path string) (*ParseResult, error) {
	return New().ReadShapesFromFile(path)
}

// ReadShapesFromFile reads the whole source at path and parses it.
// Only an unreadable source is returned as an error.
func (r *Reader) ReadShapesFromFile(path string) (*ParseResult, error) {
	data, err := r.src.ReadFile(path)
	if err != nil {
		r.log.Error("cannot read shape file", zap.String("path", path), zap.Error(err))
		return nil, &FileReadError{Path: path, Err: err}
	}
	r.log.Info("reading shape file", zap.String("path", path), zap.Int("bytes", len(data)))
	return r.Parse(string(data)), nil
}

// Parse processes content line by line. Ids are "<type>_<index>" with the
// lower-case type tag and the 0-based line index, so they are unique
// within one run.
func (r *Reader) Parse(content string) *ParseResult {
	res := &ParseResult{}

	for index, raw := range strings.Split(content, "\n") {
		lineNumber := index + 1
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		kind, err := geom.ParseKind(fields[0])
		if err != nil {
			r.log.Debug("skipping line with unknown shape type",
				zap.Int("line", lineNumber), zap.String("type", fields[0]))
			continue
		}

		id := fmt.Sprintf("%s_%d", strings.ToLower(kind.String()), index)
		payload := strings.Join(fields[1:], " ")

		var shape geom.Shape
		switch kind {
		case geom.KindTriangle:
			var t *geom.Triangle
			if t, err = r.factory.CreateTriangle(id, payload); err == nil {
				res.Triangles = append(res.Triangles, t)
				shape = t
			}
		case geom.KindPyramid:
			var p *geom.Pyramid
			if p, err = r.factory.CreatePyramid(id, payload); err == nil {
				res.Pyramids = append(res.Pyramids, p)
				shape = p
			}
		}

		if err != nil {
			res.Errors = append(res.Errors, LineError{LineNumber: lineNumber, Content: line, Err: err})
			r.log.Warn("skipped invalid line", zap.Int("line", lineNumber), zap.Error(err))
			continue
		}
		res.Shapes = append(res.Shapes, shape)
		r.log.Debug("parsed shape", zap.Int("line", lineNumber), zap.String("id", id))
	}

	r.log.Info("finished parsing",
		zap.Int("triangles", len(res.Triangles)),
		zap.Int("pyramids", len(res.Pyramids)),
		zap.Int("errors", len(res.Errors)))

	return res
}
