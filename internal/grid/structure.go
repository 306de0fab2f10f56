package grid

// The 9x9 grid and its "9 rows x 9 cols x 9 boxes" unit structure is fixed by
// construction; all of it is precomputed once at package init and shared by
// every Grid value, the way the teacher's package-level Peers/RowIndices
// tables are computed once in human/grid.go's initializePeers.

const (
	// Size is the grid's side length.
	Size = 9
	// BoxSide is the side length of one box.
	BoxSide = 3
	// Cells is the total number of cells in the grid.
	Cells = Size * Size
)

// UnitKind distinguishes a row, a column, or a box.
type UnitKind int

const (
	KindRow UnitKind = iota
	KindCol
	KindBox
)

func (k UnitKind) String() string {
	switch k {
	case KindRow:
		return "row"
	case KindCol:
		return "col"
	case KindBox:
		return "box"
	}
	return "?"
}

// Unit is one row, column, or box: nine cell indices in ascending order.
type Unit struct {
	Kind  UnitKind
	Index int
	Cells [9]int
}

// Triplet is a box-row or box-col: the three cells of a box lying in a
// single row (or column), together with its complements — the other six
// cells of the enclosing row/col, and the other six cells of the box.
type Triplet struct {
	Box            int
	Line           int // row index if IsRow, else column index
	IsRow          bool
	Cells          [3]int
	LineComplement []int // other 6 cells of the row/col, outside this box
	BoxComplement  []int // other 6 cells of the box, outside this row/col
}

var (
	rowOf [Cells]int
	colOf [Cells]int
	boxOf [Cells]int

	rowCells [Size][Size]int
	colCells [Size][Size]int
	boxCells [Size][Size]int

	peers [Cells][20]int

	rowUnits [Size]Unit
	colUnits [Size]Unit
	boxUnits [Size]Unit

	boxRowTriplets [27]Triplet // indexed by box*3 + row-within-box
	boxColTriplets [27]Triplet // indexed by box*3 + col-within-box

	boxRowTripletOf [Cells]int // cell -> index into boxRowTriplets
	boxColTripletOf [Cells]int
)

func init() {
	for idx := 0; idx < Cells; idx++ {
		r, c := idx/Size, idx%Size
		rowOf[idx], colOf[idx] = r, c
		boxOf[idx] = (r/BoxSide)*BoxSide + c/BoxSide
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			idx := r*Size + c
			rowCells[r][c] = idx
			colCells[c][r] = idx
			b := boxOf[idx]
			boxCells[b][boxSlot(idx)] = idx
		}
	}
	for i := 0; i < Size; i++ {
		rowUnits[i] = Unit{Kind: KindRow, Index: i, Cells: rowCells[i]}
		colUnits[i] = Unit{Kind: KindCol, Index: i, Cells: colCells[i]}
		boxUnits[i] = Unit{Kind: KindBox, Index: i, Cells: boxCells[i]}
	}

	for idx := 0; idx < Cells; idx++ {
		r, c, b := rowOf[idx], colOf[idx], boxOf[idx]
		seen := map[int]bool{idx: true}
		n := 0
		add := func(other int) {
			if !seen[other] {
				seen[other] = true
				peers[idx][n] = other
				n++
			}
		}
		for _, o := range rowCells[r] {
			add(o)
		}
		for _, o := range colCells[c] {
			add(o)
		}
		for _, o := range boxCells[b] {
			add(o)
		}
	}

	buildTriplets()
}

// boxSlot returns the position (0..8) of idx within its box, in row-major
// order across the box's own 3x3 grid.
func boxSlot(idx int) int {
	r, c := idx/Size, idx%Size
	br, bc := r%BoxSide, c%BoxSide
	return br*BoxSide + bc
}

func buildTriplets() {
	for box := 0; box < Size; box++ {
		boxRow0 := (box / BoxSide) * BoxSide
		boxCol0 := (box % BoxSide) * BoxSide

		for i := 0; i < BoxSide; i++ {
			r := boxRow0 + i
			var cells [3]int
			for j := 0; j < BoxSide; j++ {
				cells[j] = r*Size + boxCol0 + j
			}
			t := Triplet{Box: box, Line: r, IsRow: true, Cells: cells}
			for _, cidx := range rowCells[r] {
				if boxOf[cidx] != box {
					t.LineComplement = append(t.LineComplement, cidx)
				}
			}
			for _, cidx := range boxCells[box] {
				if rowOf[cidx] != r {
					t.BoxComplement = append(t.BoxComplement, cidx)
				}
			}
			key := box*3 + i
			boxRowTriplets[key] = t
			for _, cidx := range cells {
				boxRowTripletOf[cidx] = key
			}
		}

		for j := 0; j < BoxSide; j++ {
			c := boxCol0 + j
			var cells [3]int
			for i := 0; i < BoxSide; i++ {
				cells[i] = (boxRow0+i)*Size + c
			}
			t := Triplet{Box: box, Line: c, IsRow: false, Cells: cells}
			for _, cidx := range colCells[c] {
				if boxOf[cidx] != box {
					t.LineComplement = append(t.LineComplement, cidx)
				}
			}
			for _, cidx := range boxCells[box] {
				if colOf[cidx] != c {
					t.BoxComplement = append(t.BoxComplement, cidx)
				}
			}
			key := box*3 + j
			boxColTriplets[key] = t
			for _, cidx := range cells {
				boxColTripletOf[cidx] = key
			}
		}
	}
}

// RowOf, ColOf, BoxOf return the derived unit indices of a cell.
func RowOf(idx int) int { return rowOf[idx] }
func ColOf(idx int) int { return colOf[idx] }
func BoxOf(idx int) int { return boxOf[idx] }

// IndexOf returns the cell index for a (row, col) pair.
func IndexOf(row, col int) int { return row*Size + col }

// RowCells, ColCells, BoxCells return the nine cells of a unit in order.
func RowCells(row int) [9]int { return rowCells[row] }
func ColCells(col int) [9]int { return colCells[col] }
func BoxCells(box int) [9]int { return boxCells[box] }

// Peers returns the 20 peer indices of a cell (row + col + box, minus self).
func Peers(idx int) [20]int { return peers[idx] }

// ArePeers reports whether two distinct cells share a row, column, or box.
func ArePeers(a, b int) bool {
	if a == b {
		return false
	}
	return rowOf[a] == rowOf[b] || colOf[a] == colOf[b] || boxOf[a] == boxOf[b]
}

// AllSeeAll reports whether every cell of as sees every cell of bs.
func AllSeeAll(as, bs []int) bool {
	for _, a := range as {
		for _, b := range bs {
			if a != b && !ArePeers(a, b) {
				return false
			}
		}
	}
	return true
}

// CommonPeers returns the cells that are peers of every cell in cells.
func CommonPeers(cells []int) []int {
	if len(cells) == 0 {
		return nil
	}
	candidate := make(map[int]bool)
	for _, p := range peers[cells[0]] {
		candidate[p] = true
	}
	for _, c := range cells[1:] {
		next := make(map[int]bool)
		for _, p := range peers[c] {
			if candidate[p] {
				next[p] = true
			}
		}
		candidate = next
	}
	for _, c := range cells {
		delete(candidate, c)
	}
	out := make([]int, 0, len(candidate))
	for c := range candidate {
		out = append(out, c)
	}
	return sortedInts(out)
}

// AllUnits returns the 27 units (9 rows, 9 cols, 9 boxes) in row/col/box
// order, rows before cols before boxes, each in ascending index order — the
// tie-break order load-bearing for technique determinism (spec.md §4.5.1).
func AllUnits() []Unit {
	units := make([]Unit, 0, Size*3)
	for i := 0; i < Size; i++ {
		units = append(units, rowUnits[i])
	}
	for i := 0; i < Size; i++ {
		units = append(units, colUnits[i])
	}
	for i := 0; i < Size; i++ {
		units = append(units, boxUnits[i])
	}
	return units
}

// BoxRowTriplets returns the 27 box-row triplets in box-then-row order.
func BoxRowTriplets() []Triplet {
	out := make([]Triplet, len(boxRowTriplets))
	copy(out, boxRowTriplets[:])
	return out
}

// BoxColTriplets returns the 27 box-col triplets in box-then-col order.
func BoxColTriplets() []Triplet {
	out := make([]Triplet, len(boxColTriplets))
	copy(out, boxColTriplets[:])
	return out
}

// BoxRowTripletOf returns the box-row triplet containing idx.
func BoxRowTripletOf(idx int) Triplet { return boxRowTriplets[boxRowTripletOf[idx]] }

// BoxColTripletOf returns the box-col triplet containing idx.
func BoxColTripletOf(idx int) Triplet { return boxColTriplets[boxColTripletOf[idx]] }

func sortedInts(xs []int) []int {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
	return xs
}
