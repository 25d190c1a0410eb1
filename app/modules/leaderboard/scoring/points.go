// Package scoring holds the placement-to-points table used to rank players.
package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// PlayersPerSession is the fixed number of results in every recorded session.
const PlayersPerSession = 4

// PointsTable maps a finishing placement to the points it awards.
// Placements missing from the table award zero.
type PointsTable map[int]int

// DefaultPoints awards 3, 2 and 1 points to the top three placements.
var DefaultPoints = PointsTable{1: 3, 2: 2, 3: 1}

// For returns the points awarded for placement.
func (t PointsTable) For(placement int) int {
	return t[placement]
}

// SQLCase renders the table as a CASE expression over column, for aggregation in the store.
// Values are integers from the table itself, never user input.
func (t PointsTable) SQLCase(column string) string {
	if len(t) == 0 {
		return "0"
	}
	placements := make([]int, 0, len(t))
	for p := range t {
		placements = append(placements, p)
	}
	sort.Ints(placements)

	var b strings.Builder
	b.WriteString("CASE")
	for _, p := range placements {
		fmt.Fprintf(&b, " WHEN %s = %d THEN %d", column, p, t[p])
	}
	b.WriteString(" ELSE 0 END")
	return b.String()
}
