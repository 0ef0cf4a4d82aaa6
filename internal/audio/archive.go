package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abhisek/codevoice/internal/logging"
)

// ArchivingPlayer keeps a copy of every clip in a directory before
// handing it to the inner player.
type ArchivingPlayer struct {
	inner  Player
	dir    string
	logger *logging.Logger
	now    func() time.Time
}

// WithArchive wraps a Player so clips are also saved under dir.
// Archive failures are logged and never block playback.
func WithArchive(p Player, dir string, logger *logging.Logger) Player {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ArchivingPlayer{inner: p, dir: dir, logger: logger, now: time.Now}
}

func (a *ArchivingPlayer) Play(clip Clip) error {
	if path, err := a.save(clip); err != nil {
		a.logger.Warn("failed to archive hint audio", "dir", a.dir, "err", err)
	} else {
		a.logger.Info("hint audio saved", "path", path)
	}
	return a.inner.Play(clip)
}

func (a *ArchivingPlayer) save(clip Clip) (string, error) {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("create archive dir: %w", err)
	}

	name := sanitize(clip.Name)
	if name == "" {
		name = "hint"
	}
	filename := fmt.Sprintf("%s_%s%s", name, a.now().Format("20060102-150405.000"), Extension(clip.ContentType))
	path := filepath.Join(a.dir, filename)

	if err := os.WriteFile(path, clip.Data, 0o644); err != nil {
		return "", fmt.Errorf("write audio file: %w", err)
	}
	return path, nil
}

// sanitize lowercases s and keeps only characters safe in file names.
func sanitize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	return b.String()
}
