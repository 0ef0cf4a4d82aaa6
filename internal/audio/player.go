package audio

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/abhisek/codevoice/internal/logging"
)

// ErrNoPlayer indicates no audio player command could be found.
var ErrNoPlayer = errors.New("no audio player found (set CODEVOICE_PLAYER)")

// Clip is one audio payload to be played.
type Clip struct {
	Data        []byte
	ContentType string

	// Name is a short identifier used in file names, e.g. "problem-3".
	Name string
}

// Player starts playback of a clip. Play returns once playback has
// started; it does not wait for the clip to finish.
type Player interface {
	Play(clip Clip) error
}

// candidates are tried in order when no player command is configured.
var candidates = [][]string{
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
	{"mpv", "--no-video", "--really-quiet"},
	{"afplay"},
	{"mpg123", "-q"},
	{"paplay"},
}

// ExecPlayer plays clips by handing a temporary file to an external
// player process.
type ExecPlayer struct {
	command []string
	logger  *logging.Logger
	wg      sync.WaitGroup
}

var _ Player = (*ExecPlayer)(nil)

// NewExecPlayer creates a player for the given command line. The clip's
// file path is appended as the last argument. An empty command line
// auto-detects one of the common players on PATH.
func NewExecPlayer(commandLine string, logger *logging.Logger) (*ExecPlayer, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	command := strings.Fields(commandLine)
	if len(command) == 0 {
		command = detect(exec.LookPath)
		if command == nil {
			return nil, ErrNoPlayer
		}
	}
	return &ExecPlayer{command: command, logger: logger}, nil
}

// detect returns the first candidate whose binary is resolvable.
func detect(lookPath func(string) (string, error)) []string {
	for _, c := range candidates {
		if _, err := lookPath(c[0]); err == nil {
			return c
		}
	}
	return nil
}

// Command returns the player command line without the file argument.
func (p *ExecPlayer) Command() []string {
	return append([]string(nil), p.command...)
}

func (p *ExecPlayer) Play(clip Clip) error {
	if len(clip.Data) == 0 {
		return errors.New("empty audio clip")
	}

	f, err := os.CreateTemp("", "codevoice-*"+Extension(clip.ContentType))
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	if _, err := f.Write(clip.Data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("close temp file: %w", err)
	}

	args := append(p.Command()[1:], path)
	cmd := exec.Command(p.command[0], args...)
	if err := cmd.Start(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("start %s: %w", p.command[0], err)
	}
	p.logger.Debug("audio playback started", "player", p.command[0], "clip", clip.Name, "bytes", len(clip.Data))

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() { _ = os.Remove(path) }()
		if err := cmd.Wait(); err != nil {
			p.logger.Warn("audio player exited with error", "player", p.command[0], "err", err)
		}
	}()
	return nil
}

// Wait blocks until every started playback has finished.
func (p *ExecPlayer) Wait() {
	p.wg.Wait()
}

// NopPlayer accepts clips and discards them.
type NopPlayer struct{}

func (NopPlayer) Play(Clip) error { return nil }

// extensions maps audio media types to file extensions. Players sniff
// the container from the extension.
var extensions = map[string]string{
	"audio/mpeg":  ".mp3",
	"audio/mp3":   ".mp3",
	"audio/wav":   ".wav",
	"audio/wave":  ".wav",
	"audio/x-wav": ".wav",
	"audio/ogg":   ".ogg",
	"audio/opus":  ".opus",
	"audio/webm":  ".webm",
	"audio/aac":   ".aac",
	"audio/flac":  ".flac",
	"audio/mp4":   ".m4a",
	"audio/x-m4a": ".m4a",
}

// Extension returns the file extension for an audio content type,
// defaulting to ".mp3".
func Extension(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ".mp3"
	}
	if ext, ok := extensions[strings.ToLower(mediaType)]; ok {
		return ext
	}
	return ".mp3"
}
