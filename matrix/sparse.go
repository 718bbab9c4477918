// SPDX-License-Identifier: MIT
// Package matrix - sparse storage layouts and their triple traversals.
//
// Four layouts form a closed variant set, each with a distinct walk over
// its nonzero entries:
//
//	COO - coordinate triples, materialized (pass-through traversal)
//	CSR - row-grouped: per-row index ranges into flat col/value arrays
//	CSC - column-grouped: symmetric to CSR, column-major
//	DOK - key-value mapping keyed by (row,col), ordered by a red-black tree
//
// All satisfy SparseMatrix. Anything else participates by implementing the
// interface or converting to COO first (ToCOO).

package matrix

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/maps/treemap"
)

// SparseMatrix is the capability set the sparse decoder consumes: a shape
// and a deterministic traversal of stored (row, col, value) triples.
type SparseMatrix interface {
	// Shape returns (rows, cols).
	Shape() (rows, cols int)

	// NNZ returns the number of stored entries.
	NNZ() int

	// EachTriple visits every stored entry in the layout's natural order;
	// traversal stops early when f returns false.
	EachTriple(f func(row, col int, v float64) bool)
}

// Compile-time conformance of the closed layout set.
var (
	_ SparseMatrix = (*COO)(nil)
	_ SparseMatrix = (*CSR)(nil)
	_ SparseMatrix = (*CSC)(nil)
	_ SparseMatrix = (*DOK)(nil)
)

// checkTriples validates parallel row/col/value slices against a shape.
// Complexity: O(nnz).
func checkTriples(rows, cols int, row, col []int, val []float64) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("shape %dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	if len(row) != len(col) || len(row) != len(val) {
		return fmt.Errorf("parallel slices %d/%d/%d: %w", len(row), len(col), len(val), ErrBadTriples)
	}
	for k := range row {
		if row[k] < 0 || row[k] >= rows || col[k] < 0 || col[k] >= cols {
			return fmt.Errorf("triple %d at (%d,%d) outside %dx%d: %w",
				k, row[k], col[k], rows, cols, ErrBadTriples)
		}
	}

	return nil
}

// ---------------------------------------------------------------- COO ----

// COO stores explicit coordinate triples. Duplicate (row, col) pairs are
// legal and are summed whenever the matrix is materialized into another
// layout or a Dense - construction semantics the sparse encoder relies on
// for implicit multigraph weight summation and for the undirected
// self-loop correction.
type COO struct {
	rows, cols int
	row, col   []int
	val        []float64
}

// NewCOO builds a coordinate matrix from parallel row/col/value slices
// (slices are copied). Errors: ErrInvalidDimensions, ErrBadTriples.
// Complexity: O(nnz).
func NewCOO(rows, cols int, row, col []int, val []float64) (*COO, error) {
	if err := checkTriples(rows, cols, row, col, val); err != nil {
		return nil, fmt.Errorf("NewCOO: %w", err)
	}
	a := &COO{
		rows: rows, cols: cols,
		row: make([]int, len(row)),
		col: make([]int, len(col)),
		val: make([]float64, len(val)),
	}
	copy(a.row, row)
	copy(a.col, col)
	copy(a.val, val)

	return a, nil
}

// Shape returns (rows, cols). Complexity: O(1).
func (a *COO) Shape() (int, int) { return a.rows, a.cols }

// NNZ returns the stored triple count (duplicates included).
// Complexity: O(1).
func (a *COO) NNZ() int { return len(a.val) }

// EachTriple passes the materialized triples through in storage order.
// Complexity: O(nnz).
func (a *COO) EachTriple(f func(row, col int, v float64) bool) {
	for k := range a.val {
		if !f(a.row[k], a.col[k], a.val[k]) {
			return
		}
	}
}

// collapse returns the triples sorted row-major with duplicate (row, col)
// pairs summed. Shared by the layout conversions.
// Complexity: O(nnz log nnz).
func (a *COO) collapse() (row, col []int, val []float64) {
	ord := make([]int, len(a.val))
	for k := range ord {
		ord[k] = k
	}
	sort.SliceStable(ord, func(x, y int) bool {
		kx, ky := ord[x], ord[y]
		if a.row[kx] != a.row[ky] {
			return a.row[kx] < a.row[ky]
		}

		return a.col[kx] < a.col[ky]
	})
	for _, k := range ord {
		last := len(val) - 1
		if last >= 0 && row[last] == a.row[k] && col[last] == a.col[k] {
			val[last] += a.val[k] // duplicate pair: construction-time sum
			continue
		}
		row = append(row, a.row[k])
		col = append(col, a.col[k])
		val = append(val, a.val[k])
	}

	return row, col, val
}

// ToCSR converts to the row-grouped layout, summing duplicates.
// Complexity: O(nnz log nnz).
func (a *COO) ToCSR() *CSR {
	row, col, val := a.collapse()
	indptr := make([]int, a.rows+1)
	for _, r := range row {
		indptr[r+1]++
	}
	for i := 0; i < a.rows; i++ {
		indptr[i+1] += indptr[i]
	}

	return &CSR{rows: a.rows, cols: a.cols, indptr: indptr, indices: col, data: val}
}

// ToCSC converts to the column-grouped layout, summing duplicates.
// Complexity: O(nnz log nnz).
func (a *COO) ToCSC() *CSC {
	// Transpose, collapse row-major on the transpose, transpose back.
	t := &COO{rows: a.cols, cols: a.rows, row: a.col, col: a.row, val: a.val}
	colMajorCol, colMajorRow, val := t.collapse()
	indptr := make([]int, a.cols+1)
	for _, c := range colMajorCol {
		indptr[c+1]++
	}
	for j := 0; j < a.cols; j++ {
		indptr[j+1] += indptr[j]
	}

	return &CSC{rows: a.rows, cols: a.cols, indptr: indptr, indices: colMajorRow, data: val}
}

// ToDOK converts to the ordered key-value layout, summing duplicates.
// Complexity: O(nnz log nnz).
func (a *COO) ToDOK() *DOK {
	d := NewDOK(a.rows, a.cols)
	for k := range a.val {
		prev, _ := d.Get(a.row[k], a.col[k])
		_ = d.Set(a.row[k], a.col[k], prev+a.val[k])
	}

	return d
}

// ToDense materializes the matrix densely, summing duplicates.
// Complexity: O(rows*cols + nnz).
func (a *COO) ToDense() (*Dense, error) {
	out, err := NewDense(a.rows, a.cols)
	if err != nil {
		return nil, fmt.Errorf("COO.ToDense: %w", err)
	}
	for k := range a.val {
		out.data[a.row[k]*a.cols+a.col[k]] += a.val[k]
	}

	return out, nil
}

// ToCOO materializes any sparse layout as coordinate triples, the common
// denominator the decoder falls back to for layouts outside the closed set.
// Complexity: O(nnz).
func ToCOO(a SparseMatrix) *COO {
	rows, cols := a.Shape()
	out := &COO{rows: rows, cols: cols}
	a.EachTriple(func(r, c int, v float64) bool {
		out.row = append(out.row, r)
		out.col = append(out.col, c)
		out.val = append(out.val, v)

		return true
	})

	return out
}

// ---------------------------------------------------------------- CSR ----

// CSR stores row-grouped entries: indptr[i]..indptr[i+1] delimits row i's
// slice of the flat indices (columns) and data arrays.
type CSR struct {
	rows, cols int
	indptr     []int
	indices    []int
	data       []float64
}

// NewCSR builds a row-grouped matrix from its flat arrays (copied).
// Errors: ErrInvalidDimensions, ErrBadTriples (malformed index ranges).
// Complexity: O(rows + nnz).
func NewCSR(rows, cols int, indptr, indices []int, data []float64) (*CSR, error) {
	if err := checkGrouped(rows, cols, indptr, indices, data); err != nil {
		return nil, fmt.Errorf("NewCSR: %w", err)
	}

	return &CSR{
		rows: rows, cols: cols,
		indptr:  append([]int(nil), indptr...),
		indices: append([]int(nil), indices...),
		data:    append([]float64(nil), data...),
	}, nil
}

// checkGrouped validates a grouped layout: indptr spans groups+1 entries,
// is non-decreasing, ends at len(data), and all cross indices are in range.
func checkGrouped(groups, crossDim int, indptr, indices []int, data []float64) error {
	if groups < 0 || crossDim < 0 {
		return fmt.Errorf("shape %dx%d: %w", groups, crossDim, ErrInvalidDimensions)
	}
	if len(indptr) != groups+1 || len(indices) != len(data) {
		return fmt.Errorf("indptr %d indices %d data %d: %w",
			len(indptr), len(indices), len(data), ErrBadTriples)
	}
	if len(indptr) > 0 && (indptr[0] != 0 || indptr[groups] != len(data)) {
		return fmt.Errorf("indptr bounds [%d..%d] vs nnz %d: %w",
			indptr[0], indptr[groups], len(data), ErrBadTriples)
	}
	for i := 0; i < groups; i++ {
		if indptr[i] > indptr[i+1] {
			return fmt.Errorf("indptr not monotone at %d: %w", i, ErrBadTriples)
		}
	}
	for _, j := range indices {
		if j < 0 || j >= crossDim {
			return fmt.Errorf("index %d outside [0,%d): %w", j, crossDim, ErrBadTriples)
		}
	}

	return nil
}

// Shape returns (rows, cols). Complexity: O(1).
func (a *CSR) Shape() (int, int) { return a.rows, a.cols }

// NNZ returns the stored entry count. Complexity: O(1).
func (a *CSR) NNZ() int { return len(a.data) }

// EachTriple walks each row's index range, yielding (row, indices[k],
// data[k]) - the row-grouped traversal.
// Complexity: O(rows + nnz).
func (a *CSR) EachTriple(f func(row, col int, v float64) bool) {
	for i := 0; i < a.rows; i++ {
		for k := a.indptr[i]; k < a.indptr[i+1]; k++ {
			if !f(i, a.indices[k], a.data[k]) {
				return
			}
		}
	}
}

// ---------------------------------------------------------------- CSC ----

// CSC stores column-grouped entries: indptr[j]..indptr[j+1] delimits
// column j's slice of the flat indices (rows) and data arrays.
type CSC struct {
	rows, cols int
	indptr     []int
	indices    []int
	data       []float64
}

// NewCSC builds a column-grouped matrix from its flat arrays (copied).
// Errors: ErrInvalidDimensions, ErrBadTriples.
// Complexity: O(cols + nnz).
func NewCSC(rows, cols int, indptr, indices []int, data []float64) (*CSC, error) {
	if err := checkGrouped(cols, rows, indptr, indices, data); err != nil {
		return nil, fmt.Errorf("NewCSC: %w", err)
	}

	return &CSC{
		rows: rows, cols: cols,
		indptr:  append([]int(nil), indptr...),
		indices: append([]int(nil), indices...),
		data:    append([]float64(nil), data...),
	}, nil
}

// Shape returns (rows, cols). Complexity: O(1).
func (a *CSC) Shape() (int, int) { return a.rows, a.cols }

// NNZ returns the stored entry count. Complexity: O(1).
func (a *CSC) NNZ() int { return len(a.data) }

// EachTriple walks each column's index range, yielding (indices[k], col,
// data[k]) - the column-grouped traversal.
// Complexity: O(cols + nnz).
func (a *CSC) EachTriple(f func(row, col int, v float64) bool) {
	for j := 0; j < a.cols; j++ {
		for k := a.indptr[j]; k < a.indptr[j+1]; k++ {
			if !f(a.indices[k], j, a.data[k]) {
				return
			}
		}
	}
}

// ---------------------------------------------------------------- DOK ----

// dokKey is the (row, col) coordinate key of the key-value layout.
type dokKey struct {
	r, c int
}

// dokComparator orders keys row-major so DOK traversal is deterministic.
func dokComparator(a, b interface{}) int {
	ka, kb := a.(dokKey), b.(dokKey)
	switch {
	case ka.r < kb.r:
		return -1
	case ka.r > kb.r:
		return 1
	case ka.c < kb.c:
		return -1
	case ka.c > kb.c:
		return 1
	default:
		return 0
	}
}

// DOK is the key-value sparse layout: a red-black treemap keyed by
// (row, col), so triple iteration is ordered and repeatable.
type DOK struct {
	rows, cols int
	m          *treemap.Map
}

// NewDOK creates an empty key-value matrix of the given shape.
// Complexity: O(1).
func NewDOK(rows, cols int) *DOK {
	return &DOK{rows: rows, cols: cols, m: treemap.NewWith(dokComparator)}
}

// Shape returns (rows, cols). Complexity: O(1).
func (a *DOK) Shape() (int, int) { return a.rows, a.cols }

// NNZ returns the stored entry count. Complexity: O(1).
func (a *DOK) NNZ() int { return a.m.Size() }

// Set stores v at (row, col), overwriting any previous entry.
// Errors: ErrOutOfRange. Complexity: O(log nnz).
func (a *DOK) Set(row, col int, v float64) error {
	if row < 0 || row >= a.rows || col < 0 || col >= a.cols {
		return fmt.Errorf("DOK.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	a.m.Put(dokKey{r: row, c: col}, v)

	return nil
}

// Get returns the stored value at (row, col) and whether an entry exists.
// Complexity: O(log nnz).
func (a *DOK) Get(row, col int) (float64, bool) {
	v, ok := a.m.Get(dokKey{r: row, c: col})
	if !ok {
		return 0, false
	}

	return v.(float64), true
}

// EachTriple yields one (row, col, value) per mapping entry in key order -
// the key-value traversal.
// Complexity: O(nnz log nnz).
func (a *DOK) EachTriple(f func(row, col int, v float64) bool) {
	for _, k := range a.m.Keys() {
		key := k.(dokKey)
		v, _ := a.m.Get(key)
		if !f(key.r, key.c, v.(float64)) {
			return
		}
	}
}
