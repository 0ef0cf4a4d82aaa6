package api

import (
	"context"

	"github.com/abhisek/codevoice/internal/catalog"
)

// Backend is the set of remote operations the client depends on.
type Backend interface {
	// ListProblems fetches the problem catalog. An empty catalog is valid.
	ListProblems(ctx context.Context) ([]catalog.Problem, error)

	// Execute runs code on the execution backend.
	Execute(ctx context.Context, req ExecuteRequest) (*ExecuteResponse, error)

	// AskAI requests a spoken hint for the given code and problem.
	AskAI(ctx context.Context, req HintRequest) (*Audio, error)

	// Greeting calls the backend root, used as a health check.
	Greeting(ctx context.Context) (*Greeting, error)
}

// ExecuteRequest is the body of POST /execute.
type ExecuteRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// ExecuteResponse is the body returned by POST /execute. Run is nil when
// the backend produced no run section.
type ExecuteResponse struct {
	Run *RunResult `json:"run,omitempty"`
}

// RunResult holds the captured streams of one execution.
type RunResult struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
}

// Output returns stdout, or stderr when stdout is empty.
func (r RunResult) Output() string {
	if r.Stdout != "" {
		return r.Stdout
	}
	return r.Stderr
}

// HintRequest is the body of POST /ask-ai.
type HintRequest struct {
	Code      string `json:"code"`
	ProblemID int    `json:"problem_id"`
}

// Audio is a hint payload as returned by POST /ask-ai.
type Audio struct {
	Data        []byte
	ContentType string
}

// Greeting is the body returned by GET /.
type Greeting struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
