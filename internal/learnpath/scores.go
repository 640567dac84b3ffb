package learnpath

import (
	"sort"
	"strings"
)

const (
	MinScore = 0
	MaxScore = 100
)

// ClampScore bounds a raw score to [MinScore, MaxScore]. Scores originate
// from a bounded slider, so this is the only input boundary check applied.
func ClampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// NormalizeDifficulty returns d, or DefaultDifficulty when d is empty.
func NormalizeDifficulty(d Difficulty) Difficulty {
	d = Difficulty(strings.ToLower(strings.TrimSpace(string(d))))
	if d == "" {
		return DefaultDifficulty
	}
	return d
}

// ScoreStore holds at most one active score per domain. It is single-writer
// state owned by a session and is not safe for concurrent use on its own.
type ScoreStore struct {
	entries map[Domain]ScoreEntry
}

// NewScoreStore creates an empty store.
func NewScoreStore() *ScoreStore {
	return &ScoreStore{entries: make(map[Domain]ScoreEntry)}
}

// Set upserts the score for domain, clamping it to [0,100] and defaulting
// the difficulty. It returns the entry as stored.
func (s *ScoreStore) Set(domain Domain, score int, difficulty Difficulty) ScoreEntry {
	e := ScoreEntry{
		Domain:     domain,
		Score:      ClampScore(score),
		Difficulty: NormalizeDifficulty(difficulty),
	}
	s.entries[domain] = e
	return e
}

// Get returns the current entry for domain; ok is false when unset.
func (s *ScoreStore) Get(domain Domain) (ScoreEntry, bool) {
	e, ok := s.entries[domain]
	return e, ok
}

// All returns every entry ordered by domain name. The result is never nil so
// it serializes as an empty JSON array.
func (s *ScoreStore) All() []ScoreEntry {
	out := make([]ScoreEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Domain < out[j].Domain })
	return out
}

// Len returns the number of domains with a score.
func (s *ScoreStore) Len() int {
	return len(s.entries)
}
