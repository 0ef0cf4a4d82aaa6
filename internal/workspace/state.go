package workspace

import (
	"errors"

	"github.com/abhisek/codevoice/internal/api"
	"github.com/abhisek/codevoice/internal/catalog"
	"github.com/abhisek/codevoice/internal/config"
)

// Console lines written by the controller.
const (
	ExecutionErrorMessage    = "Error connecting to execution engine."
	BackendUnreachableNotice = "Backend not reachable."
	MentorSpeakingNotice     = "\n\n[AI Mentor is speaking...]"
	HintErrorNotice          = "\n\n[AI Error: Could not generate hint]"
)

// ErrUnknownProblem is returned when selecting a problem that is not part
// of the loaded catalog.
var ErrUnknownProblem = errors.New("problem is not in the catalog")

// State is the session state of one workspace. It is owned by a single
// goroutine (the UI event loop) and is not safe for concurrent use.
//
// Every operation is split in two: a Begin step that checks and sets the
// busy flag and returns the request to send, and a Finish step that
// applies the response. The network call happens in between, off the
// owning goroutine.
type State struct {
	problems []catalog.Problem
	active   int // index into problems, -1 when unset

	code   string
	output string

	running  bool
	thinking bool

	catalogLoaded bool
	catalogErr    error

	policy   config.CatalogErrorPolicy
	language string
}

// NewState creates an empty state. language is sent with every run.
func NewState(policy config.CatalogErrorPolicy, language string) *State {
	if language == "" {
		language = "python"
	}
	return &State{
		active:   -1,
		policy:   policy,
		language: language,
	}
}

// Problems returns the loaded catalog. The slice must not be modified.
func (s *State) Problems() []catalog.Problem { return s.problems }

// Active returns the selected problem.
func (s *State) Active() (catalog.Problem, bool) {
	if s.active < 0 {
		return catalog.Problem{}, false
	}
	return s.problems[s.active], true
}

// ActiveIndex returns the position of the selected problem, or -1.
func (s *State) ActiveIndex() int { return s.active }

// Code returns the editor contents.
func (s *State) Code() string { return s.code }

// Output returns the console contents.
func (s *State) Output() string { return s.output }

// IsRunning reports whether a run request is in flight.
func (s *State) IsRunning() bool { return s.running }

// IsAIThinking reports whether a hint request is in flight.
func (s *State) IsAIThinking() bool { return s.thinking }

// CatalogLoaded reports whether a catalog fetch has succeeded.
func (s *State) CatalogLoaded() bool { return s.catalogLoaded }

// CatalogErr returns the error of the last failed catalog fetch.
func (s *State) CatalogErr() error { return s.catalogErr }

// Language returns the language sent with run requests.
func (s *State) Language() string { return s.language }

// ApplyCatalog stores the result of a catalog fetch. On success the first
// problem, if any, is selected. On failure the list stays empty; whether
// the console says so depends on the catalog error policy.
func (s *State) ApplyCatalog(problems []catalog.Problem, err error) {
	if err != nil {
		s.problems = nil
		s.active = -1
		s.catalogErr = err
		if s.policy == config.CatalogErrorsMessage {
			s.output = BackendUnreachableNotice
		}
		return
	}

	s.problems = append([]catalog.Problem(nil), problems...)
	s.active = -1
	s.catalogLoaded = true
	s.catalogErr = nil
	if len(s.problems) > 0 {
		_ = s.SelectProblem(s.problems[0])
	}
}

// SelectProblem makes p the active problem, resets the editor to its
// starter code and clears the console.
func (s *State) SelectProblem(p catalog.Problem) error {
	i := catalog.Index(s.problems, p)
	if i < 0 {
		return ErrUnknownProblem
	}
	return s.SelectProblemAt(i)
}

// SelectProblemAt selects the catalog entry at position i.
func (s *State) SelectProblemAt(i int) error {
	if i < 0 || i >= len(s.problems) {
		return ErrUnknownProblem
	}
	s.active = i
	s.code = s.problems[i].StarterCode()
	s.output = ""
	return nil
}

// SelectProblemByID selects the first catalog entry with the given ID.
func (s *State) SelectProblemByID(id int) error {
	p, ok := catalog.Find(s.problems, id)
	if !ok {
		return ErrUnknownProblem
	}
	return s.SelectProblem(p)
}

// SetCode replaces the editor contents.
func (s *State) SetCode(code string) {
	s.code = code
}

// BeginRun marks a run as in flight and returns the request to send.
// It returns false, and changes nothing, while another run is pending.
func (s *State) BeginRun() (api.ExecuteRequest, bool) {
	if s.running {
		return api.ExecuteRequest{}, false
	}
	s.running = true
	return api.ExecuteRequest{Code: s.code, Language: s.language}, true
}

// FinishRun applies the outcome of a run and clears the busy flag.
// A response without a run section leaves the console untouched.
func (s *State) FinishRun(resp *api.ExecuteResponse, err error) {
	defer func() { s.running = false }()

	if err != nil {
		s.output = ExecutionErrorMessage
		return
	}
	if resp != nil && resp.Run != nil {
		s.output = resp.Run.Output()
	}
}

// BeginHint marks a hint request as in flight and returns the request to
// send. It returns false without an active problem or while another hint
// request is pending.
func (s *State) BeginHint() (api.HintRequest, bool) {
	p, ok := s.Active()
	if !ok || s.thinking {
		return api.HintRequest{}, false
	}
	s.thinking = true
	return api.HintRequest{Code: s.code, ProblemID: p.ID}, true
}

// FinishHint appends the hint outcome to the console and clears the busy
// flag. Existing console output is kept either way.
func (s *State) FinishHint(err error) {
	defer func() { s.thinking = false }()

	if err != nil {
		s.output += HintErrorNotice
		return
	}
	s.output += MentorSpeakingNotice
}
