package learnpath

import (
	"strings"
)

// GenerateRequest asks the plan generator for a full plan.
type GenerateRequest struct {
	TargetRole  string       `json:"target_role"`
	QuizScores  []ScoreEntry `json:"quiz_scores"`
	WeeklyHours int          `json:"weekly_hours"`
}

// AdaptRequest asks the plan generator to re-prioritize an existing plan
// from a single new score.
type AdaptRequest struct {
	CurrentPath Plan       `json:"current_path"`
	NewQuiz     ScoreEntry `json:"new_quiz"`
}

// ResourceRequest asks for curated resources on a single topic.
type ResourceRequest struct {
	Topic string `json:"topic"`
	Level string `json:"level"`
	Count int    `json:"count"`
}

const (
	DefaultResourceLevel = "intermediate"
	DefaultResourceCount = 4
)

// BuildGenerateRequest validates the role and hours and attaches a copy of
// scores with difficulties defaulted.
func BuildGenerateRequest(role string, weeklyHours int, scores []ScoreEntry) (GenerateRequest, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return GenerateRequest{}, &ValidationError{Field: "target_role", Reason: "must not be empty"}
	}
	if weeklyHours <= 0 {
		return GenerateRequest{}, &ValidationError{Field: "weekly_hours", Reason: "must be positive"}
	}

	quiz := make([]ScoreEntry, 0, len(scores))
	for _, s := range scores {
		s.Difficulty = NormalizeDifficulty(s.Difficulty)
		quiz = append(quiz, s)
	}

	return GenerateRequest{
		TargetRole:  role,
		QuizScores:  quiz,
		WeeklyHours: weeklyHours,
	}, nil
}

// BuildAdaptRequest pairs the current plan with exactly one new score. The
// domain must be named explicitly; an ambiguous "which score changed" is
// rejected rather than guessed.
func BuildAdaptRequest(current *Plan, domain Domain, score int, difficulty Difficulty) (AdaptRequest, error) {
	if current == nil {
		return AdaptRequest{}, &ValidationError{Field: "current_path", Reason: "no plan to adapt"}
	}
	if strings.TrimSpace(string(domain)) == "" {
		return AdaptRequest{}, &ValidationError{Field: "new_quiz.domain", Reason: "no domain to attribute the change to"}
	}
	return AdaptRequest{
		CurrentPath: *current,
		NewQuiz: ScoreEntry{
			Domain:     domain,
			Score:      ClampScore(score),
			Difficulty: NormalizeDifficulty(difficulty),
		},
	}, nil
}

// BuildResourceRequest validates the topic and fills defaults.
func BuildResourceRequest(topic, level string, count int) (ResourceRequest, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return ResourceRequest{}, &ValidationError{Field: "topic", Reason: "must not be empty"}
	}
	if level == "" {
		level = DefaultResourceLevel
	}
	if count <= 0 {
		count = DefaultResourceCount
	}
	return ResourceRequest{Topic: topic, Level: level, Count: count}, nil
}
