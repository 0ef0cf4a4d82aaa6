package catalog

import "fmt"

// TestCaseSeparator joins a problem's starter template and its test harness.
const TestCaseSeparator = "\n\n# Test Case\n"

// Difficulty is the catalog's difficulty label. Values the client does not
// know about are kept verbatim.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Problem is one catalog entry as served by GET /problems.
type Problem struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Difficulty  Difficulty `json:"difficulty"`
	Description string     `json:"description"`
	Template    string     `json:"template"`
	TestCase    string     `json:"test_case"`
}

// StarterCode returns the editor contents a fresh selection starts from.
func (p Problem) StarterCode() string {
	return p.Template + TestCaseSeparator + p.TestCase
}

// Label renders the problem the way the problem list shows it.
func (p Problem) Label() string {
	return fmt.Sprintf("%d. %s", p.ID, p.Title)
}
