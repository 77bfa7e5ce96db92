// Package export writes samples out for use elsewhere.
package export

import (
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// Record is one sample as written to CSV. Axes beyond the sample's
// dimensionality are left at 0; at most three are kept.
type Record struct {
	Index int     `csv:"index"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	Z     float64 `csv:"z"`
}

// Records converts positions to CSV records
func Records(pts [][]float64) []*Record {
	out := make([]*Record, len(pts))
	for i, p := range pts {
		r := &Record{Index: i}
		axes := []*float64{&r.X, &r.Y, &r.Z}
		for a := 0; a < len(p) && a < len(axes); a++ {
			*axes[a] = p[a]
		}
		out[i] = r
	}
	return out
}

// WriteCSV writes pts with a header line to w
func WriteCSV(w io.Writer, pts [][]float64) error {
	return errors.Wrap(gocsv.Marshal(Records(pts), w), "encoding samples")
}

// SaveCSV writes pts to the file at fpath, replacing it if present
func SaveCSV(fpath string, pts [][]float64) error {
	f, err := os.Create(fpath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", fpath)
	}
	defer f.Close()

	if err := WriteCSV(f, pts); err != nil {
		return err
	}
	return errors.Wrapf(f.Close(), "closing %s", fpath)
}

// ReadCSV parses records previously written by WriteCSV
func ReadCSV(r io.Reader) ([]*Record, error) {
	out := []*Record{}
	if err := gocsv.Unmarshal(r, &out); err != nil {
		return nil, errors.Wrap(err, "decoding samples")
	}
	return out, nil
}
