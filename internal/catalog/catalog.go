package catalog

// Find returns the problem with the given ID.
func Find(problems []Problem, id int) (Problem, bool) {
	for _, p := range problems {
		if p.ID == id {
			return p, true
		}
	}
	return Problem{}, false
}

// Index returns the position of the first entry equal to p, or -1.
// Entries are compared by value so a stale copy of an edited entry does
// not match.
func Index(problems []Problem, p Problem) int {
	for i, q := range problems {
		if q == p {
			return i
		}
	}
	return -1
}
