package matrix

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, col, row int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, col, row, err)
}

// Dense is a flat-array square matrix of T, indexed (col, row).
// width is both the row and column count; data holds width*width elements in
// row-major order: data[row*width+col].
type Dense[T any] struct {
	width int
	data  []T
}

// NewDense allocates a width×width Dense matrix with all elements at their
// zero value.
//
// Complexity: O(width^2) time and memory.
func NewDense[T any](width int) (*Dense[T], error) {
	if width <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{width: width, data: make([]T, width*width)}, nil
}

// NewDenseFilled allocates a width×width Dense matrix with every element set
// to fill.
//
// Complexity: O(width^2) time and memory.
func NewDenseFilled[T any](width int, fill T) (*Dense[T], error) {
	m, err := NewDense[T](width)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = fill
	}

	return m, nil
}

// Width returns the matrix's row/column count.
func (m *Dense[T]) Width() int {
	return m.width
}

// index computes the flat offset for (col, row), or ErrIndexOutOfBounds.
func (m *Dense[T]) index(col, row int) (int, error) {
	if col < 0 || col >= m.width || row < 0 || row >= m.width {
		return 0, denseErrorf("At", col, row, ErrIndexOutOfBounds)
	}

	return row*m.width + col, nil
}

// At returns the element at (col, row). Panics if the index is out of bounds —
// the ACO hot path never constructs an out-of-range index, so this keeps the
// common case allocation- and branch-free for callers.
func (m *Dense[T]) At(col, row int) T {
	idx, err := m.index(col, row)
	if err != nil {
		panic(err)
	}

	return m.data[idx]
}

// Set assigns v at (col, row). Panics if the index is out of bounds; see At.
func (m *Dense[T]) Set(col, row int, v T) {
	idx, err := m.index(col, row)
	if err != nil {
		panic(err)
	}
	m.data[idx] = v
}

// Row returns the backing slice for row — not a copy. Mutating the returned
// slice mutates the matrix. Length equals Width().
func (m *Dense[T]) Row(row int) []T {
	if row < 0 || row >= m.width {
		panic(denseErrorf("Row", 0, row, ErrIndexOutOfBounds))
	}
	start := row * m.width

	return m.data[start : start+m.width]
}

// Fill overwrites the entire matrix with v.
//
// Complexity: O(width^2).
func (m *Dense[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// FillOffDiagonal overwrites every element except the diagonal with v, used
// by MMAS's stagnation restart to reset τ to trail_max off-diagonal while
// leaving the +Inf self-loop sentinel untouched.
//
// Complexity: O(width^2).
func (m *Dense[T]) FillOffDiagonal(v T) {
	for row := 0; row < m.width; row++ {
		for col := 0; col < m.width; col++ {
			if col != row {
				m.data[row*m.width+col] = v
			}
		}
	}
}
