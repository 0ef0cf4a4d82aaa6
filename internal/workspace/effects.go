package workspace

import (
	"context"
	"fmt"

	"github.com/abhisek/codevoice/internal/api"
	"github.com/abhisek/codevoice/internal/audio"
)

// RequestHint fetches a hint and starts playing it. It returns once
// playback has started; a player failure counts as a failed hint.
func RequestHint(ctx context.Context, backend api.Backend, player audio.Player, req api.HintRequest) (*api.Audio, error) {
	a, err := backend.AskAI(ctx, req)
	if err != nil {
		return nil, err
	}

	clip := audio.Clip{
		Data:        a.Data,
		ContentType: a.ContentType,
		Name:        fmt.Sprintf("problem-%d", req.ProblemID),
	}
	if err := player.Play(clip); err != nil {
		return a, fmt.Errorf("play hint: %w", err)
	}
	return a, nil
}
