package store

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"tidychat/internal/gemini"
	"tidychat/internal/normalize"
)

// LoadNormalized returns a session's turns with every model reply run
// through the normalization pass again. Transcripts recorded by older
// versions may predate a normalization rule; re-normalizing on load keeps
// displayed history consistent with live replies. The pass is pure, so
// turns are processed concurrently.
func (s *Store) LoadNormalized(sessionID string) ([]gemini.Message, error) {
	turns, err := s.Turns(sessionID)
	if err != nil {
		return nil, err
	}

	msgs := make([]gemini.Message, len(turns))

	var g errgroup.Group
	g.SetLimit(8)
	for i, turn := range turns {
		i, turn := i, turn
		g.Go(func() error {
			content := turn.Content
			if turn.Role == gemini.RoleModel {
				content = normalize.Normalize(content)
			}
			msgs[i] = gemini.Message{Role: turn.Role, Content: content}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to normalize transcript: %w", err)
	}

	return msgs, nil
}
