package trajectory

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DefaultExtension is the suffix of simulator log files.
const DefaultExtension = ".csv"

// Delimiter separates the columns of a log row.
const Delimiter = ';'

// Columns is the number of columns every log row must carry.
const Columns = 6

var numericColumns = [...]string{"x", "y", "aux", "heading", "status"}

// Load reads a trajectory from r. Rows are kept in input order; the first
// malformed row aborts the load and no partial trajectory is returned.
func Load(r io.Reader, name string) (*Trajectory, error) {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.Comment = '#'
	cr.FieldsPerRecord = 0
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	tr := &Trajectory{Name: name, Source: name}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return tr, nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &FormatError{Path: name, Line: pe.Line, Err: pe.Err}
			}
			return nil, &IOError{Op: "read", Path: name, Err: err}
		}
		line, _ := cr.FieldPos(0)
		s, fe := parseRow(rec)
		if fe != nil {
			fe.Path = name
			fe.Line = line
			return nil, fe
		}
		tr.Samples = append(tr.Samples, s)
	}
}

func parseRow(rec []string) (Sample, *FormatError) {
	if len(rec) < Columns {
		return Sample{}, &FormatError{Err: fmt.Errorf("expected at least %d columns, got %d", Columns, len(rec))}
	}
	var vals [len(numericColumns)]float64
	for i := range numericColumns {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[i+1]), 64)
		if err != nil {
			return Sample{}, &FormatError{Column: i + 2, Err: fmt.Errorf("%s: %w", numericColumns[i], err)}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Sample{}, &FormatError{Column: i + 2, Err: fmt.Errorf("%s: %q is not a finite number", numericColumns[i], rec[i+1])}
		}
		vals[i] = v
	}
	return Sample{
		Timestamp: strings.TrimSpace(rec[0]),
		Position:  Position{X: vals[0], Y: vals[1]},
		Aux:       vals[2],
		Heading:   vals[3],
		Status:    vals[4],
	}, nil
}

// LoadFile opens and loads one log file. The trajectory is named after the
// file with its extension removed.
func LoadFile(path string) (*Trajectory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	base := filepath.Base(path)
	tr, err := Load(f, base)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return nil, err
	}
	tr.Name = strings.TrimSuffix(base, filepath.Ext(base))
	tr.Source = path
	return tr, nil
}

// LoadOptions controls directory loading.
type LoadOptions struct {
	// Extension selects log files; other entries are skipped.
	Extension string
	// Workers bounds concurrent file loads. Values below 1 load sequentially.
	Workers int
}

// LogFiles lists the log files in dir in directory order.
func LogFiles(dir, ext string) ([]string, error) {
	if ext == "" {
		ext = DefaultExtension
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &IOError{Op: "read dir", Path: dir, Err: err}
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// LoadDir loads every log file in dir. Files may be read concurrently but
// the result is always in directory order, and the first error aborts the
// whole load.
func LoadDir(ctx context.Context, dir string, opts LoadOptions) ([]*Trajectory, error) {
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	paths, err := LogFiles(dir, opts.Extension)
	if err != nil {
		return nil, err
	}

	out := make([]*Trajectory, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tr, err := LoadFile(p)
			if err != nil {
				return err
			}
			tr.Name = strings.TrimSuffix(filepath.Base(p), opts.Extension)
			out[i] = tr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
