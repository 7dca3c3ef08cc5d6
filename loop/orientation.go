package loop

// SignedArea2 returns twice the signed area enclosed by the loop, computed
// with the shoelace formula over cell centres with x = Col and y = Row.
// Because rows grow downward, a positive value means the loop is traversed
// clockwise as drawn on screen.
// Complexity: O(L).
func (l *Loop) SignedArea2() int {
	sum := 0
	n := len(l.cells)
	for i, p := range l.cells {
		q := l.cells[(i+1)%n]
		sum += p.Col*q.Row - q.Col*p.Row
	}
	return sum
}

// Clockwise reports whether the traversal order runs clockwise on screen.
// For a clockwise loop the cells on the right-hand side of travel are the
// enclosed ones.
func (l *Loop) Clockwise() bool {
	return l.SignedArea2() > 0
}

// Interior returns the number of grid cells strictly enclosed by the loop,
// by Pick's theorem: A = I + B/2 - 1 with every loop cell a boundary point.
func (l *Loop) Interior() int {
	a2 := l.SignedArea2()
	if a2 < 0 {
		a2 = -a2
	}
	return (a2 - len(l.cells) + 2) / 2
}
