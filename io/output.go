package io

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/phil-mansfield/table"
	"github.com/pkg/errors"
)

// ReadPoints reads the x, y and z columns cols of a whitespace separated
// table.
func ReadPoints(fname string, cols [3]int) ([][3]float64, error) {
	data, err := table.ReadTable(fname, cols[:], nil)
	if err != nil {
		return nil, errors.Wrapf(err, "reading point table %s", fname)
	}

	xs := make([][3]float64, len(data[0]))
	for i := range xs {
		xs[i] = [3]float64{data[0][i], data[1][i], data[2][i]}
	}
	return xs, nil
}

// WritePoints writes xs to wr as a three column table.
func WritePoints(wr io.Writer, xs [][3]float64) error {
	buf := bufio.NewWriter(wr)
	for _, x := range xs {
		if _, err := fmt.Fprintf(buf, "%.17g %.17g %.17g\n", x[0], x[1], x[2]); err != nil {
			return errors.Wrap(err, "writing point table")
		}
	}
	return errors.Wrap(buf.Flush(), "writing point table")
}

// WritePointsFile writes xs to the named file as a three column table.
func WritePointsFile(fname string, xs [][3]float64) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := WritePoints(f, xs); err != nil {
		f.Close()
		return errors.Wrapf(err, "point table %s", fname)
	}
	return f.Close()
}
