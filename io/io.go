/*package io reads and writes the files used by the athena command: gcfg
configuration files, whitespace separated point tables and binary point
files.

Binary point files start with an int32 endianness flag and an int32 header
size, followed by a PointHeader and the coordinates, x, y and z for each
point in turn.
*/
package io

import (
	"encoding/binary"
	"io"
	"os"
	"unsafe"

	"github.com/pkg/errors"
)

const (
	// Endianness used by default when writing point files. Files of either
	// endianness can be read.
	DefaultEndiannessFlag int32 = 0

	// headerBytes is the size of the flag, the header size and the header.
	headerBytes = 8 + int64(unsafe.Sizeof(PointHeader{}))
	pointBytes  = int64(unsafe.Sizeof([3]float64{}))
)

// PointHeader describes the contents of a binary point file.
type PointHeader struct {
	Count int64
	// Time is the scene time the points were moved to, if any.
	Time float64
}

// endianness converts an endianness flag to a byte order.
func endianness(flag int32) (binary.ByteOrder, error) {
	switch flag {
	case 0:
		return binary.LittleEndian, nil
	case -1:
		return binary.BigEndian, nil
	}
	return nil, errors.Errorf("unrecognized endianness flag %d", flag)
}

func readHeader(r io.Reader, hd *PointHeader) (binary.ByteOrder, error) {
	var flag int32
	// The flags read the same in either byte order.
	if err := binary.Read(r, binary.LittleEndian, &flag); err != nil {
		return nil, errors.Wrap(err, "reading endianness flag")
	}
	order, err := endianness(flag)
	if err != nil {
		return nil, err
	}

	var size int32
	if err := binary.Read(r, order, &size); err != nil {
		return nil, errors.Wrap(err, "reading header size")
	}
	if size != int32(unsafe.Sizeof(PointHeader{})) {
		return nil, errors.Errorf("expected PointHeader size of %d, found %d",
			unsafe.Sizeof(PointHeader{}), size)
	}

	if err := binary.Read(r, order, hd); err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	if hd.Count < 0 {
		return nil, errors.Errorf("header has negative point count %d", hd.Count)
	}
	return order, nil
}

// ReadBinaryHeader reads the header of the given point file.
func ReadBinaryHeader(file string) (*PointHeader, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hd := &PointHeader{}
	if _, err := readHeader(f, hd); err != nil {
		return nil, errors.Wrapf(err, "point file %s", file)
	}
	return hd, nil
}

// ReadBinaryPoints reads every point in the given file.
func ReadBinaryPoints(file string) (*PointHeader, [][3]float64, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	hd := &PointHeader{}
	order, err := readHeader(f, hd)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "point file %s", file)
	}

	info, err := f.Stat()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "point file %s", file)
	}
	body := info.Size() - headerBytes
	if hd.Count > body/pointBytes || hd.Count*pointBytes != body {
		return nil, nil, errors.Errorf(
			"point file %s: header count %d does not match %d bytes of points",
			file, hd.Count, body,
		)
	}

	xs := make([][3]float64, hd.Count)
	if err := binary.Read(f, order, xs); err != nil {
		return nil, nil, errors.Wrapf(err, "reading %d points from %s", hd.Count, file)
	}
	return hd, xs, nil
}

// WriteBinaryPoints writes xs to wr. The Count of hd is set to len(xs).
func WriteBinaryPoints(wr io.Writer, hd PointHeader, xs [][3]float64) error {
	return writeBinaryPoints(wr, DefaultEndiannessFlag, hd, xs)
}

func writeBinaryPoints(wr io.Writer, flag int32, hd PointHeader, xs [][3]float64) error {
	order, err := endianness(flag)
	if err != nil {
		return err
	}
	hd.Count = int64(len(xs))

	if err = binary.Write(wr, order, flag); err != nil {
		return errors.Wrap(err, "writing endianness flag")
	}
	if err = binary.Write(wr, order, int32(unsafe.Sizeof(PointHeader{}))); err != nil {
		return errors.Wrap(err, "writing header size")
	}
	if err = binary.Write(wr, order, &hd); err != nil {
		return errors.Wrap(err, "writing header")
	}
	if err = binary.Write(wr, order, xs); err != nil {
		return errors.Wrap(err, "writing points")
	}
	return nil
}

// WriteBinaryPointsFile writes xs to the named file.
func WriteBinaryPointsFile(file string, hd PointHeader, xs [][3]float64) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := WriteBinaryPoints(f, hd, xs); err != nil {
		f.Close()
		return errors.Wrapf(err, "point file %s", file)
	}
	return f.Close()
}
