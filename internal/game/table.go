package game

import "github.com/freer4an/rpc-game-nodejs/internal/moves"

// Table is the full pairwise outcome matrix of a move set.
// Cell [i][j] is the verdict of row move i played against column move j,
// which is the same sense as DetermineWinner(i, j, n).
type Table struct {
	Moves []string
	Cells [][]Verdict
}

// BuildTable derives the relation table for set. The verdicts depend only
// on the number of moves; names label the rows and columns.
func BuildTable(set moves.MoveSet) Table {
	n := set.Len()
	cells := make([][]Verdict, n)
	for i := 0; i < n; i++ {
		row := make([]Verdict, n)
		for j := 0; j < n; j++ {
			row[j] = DetermineWinner(i, j, n)
		}
		cells[i] = row
	}
	return Table{Moves: set.Names(), Cells: cells}
}

// At returns the verdict of move i against move j.
func (t Table) At(i, j int) Verdict { return t.Cells[i][j] }

// Beats lists the moves that row i defeats, in table order.
func (t Table) Beats(i int) []string {
	var out []string
	for j, v := range t.Cells[i] {
		if v == Win {
			out = append(out, t.Moves[j])
		}
	}
	return out
}
