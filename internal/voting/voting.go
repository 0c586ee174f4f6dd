// Package voting holds the shared vote bookkeeping used by posts and comments.
// It is pure set arithmetic; persistence and per-entity serialization are the
// caller's responsibility.
package voting

import (
	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/google/uuid"
)

// Apply removes voter from both sets, then re-adds it to the set matching vote.
// An unknown vote type only removes, so the voter ends up in neither set.
// A voter id appears in at most one of the returned sets, and
// Result.Score == len(up) - len(down) always holds.
func Apply(upvoters, downvoters []uuid.UUID, voter uuid.UUID, vote domain.VoteType) ([]uuid.UUID, []uuid.UUID, domain.VoteResult) {
	up := remove(upvoters, voter)
	down := remove(downvoters, voter)

	switch vote {
	case domain.VoteUp:
		up = append(up, voter)
	case domain.VoteDown:
		down = append(down, voter)
	}

	return up, down, domain.VoteResult{
		Score:     len(up) - len(down),
		Upvotes:   len(up),
		Downvotes: len(down),
	}
}

func remove(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
