package mat

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// MarshalJSON writes m as an array of columns.
func (m *Matrix[T]) MarshalJSON() ([]byte, error) {
	cols := make([][]T, m.Width)
	for j := range cols {
		cols[j] = m.Vals[j*m.Height : (j+1)*m.Height]
	}
	return json.Marshal(cols)
}

// UnmarshalJSON reads an array of equal length columns into m.
func (m *Matrix[T]) UnmarshalJSON(data []byte) error {
	var cols [][]T
	if err := json.Unmarshal(data, &cols); err != nil {
		return errors.Wrap(err, "decoding matrix columns")
	}
	if len(cols) == 0 || len(cols[0]) == 0 {
		return errors.New("matrix must have at least one non-empty column")
	}

	height := len(cols[0])
	vals := make([]T, 0, height*len(cols))
	for j, col := range cols {
		if len(col) != height {
			return errors.Errorf("column %d has length %d, expected %d", j, len(col), height)
		}
		vals = append(vals, col...)
	}

	m.Vals, m.Width, m.Height = vals, len(cols), height
	return nil
}
