package workspace

import (
	"github.com/abhisek/codevoice/internal/api"
	"github.com/abhisek/codevoice/internal/catalog"
)

// catalogLoadedMsg carries the result of GET /problems.
type catalogLoadedMsg struct {
	Problems []catalog.Problem
	Err      error
}

// problemChosenMsg is sent when a problem is picked from the list.
type problemChosenMsg struct {
	Index int
}

// runPressedMsg is sent by the Run button.
type runPressedMsg struct{}

// hintPressedMsg is sent by the Ask AI Hint button.
type hintPressedMsg struct{}

// runFinishedMsg carries the result of POST /execute.
type runFinishedMsg struct {
	ProblemID int
	Request   api.ExecuteRequest
	Response  *api.ExecuteResponse
	Err       error
}

// hintFinishedMsg is sent once the hint audio has started playing, or
// the request or playback failed.
type hintFinishedMsg struct {
	Request api.HintRequest
	Audio   *api.Audio
	Err     error
}
