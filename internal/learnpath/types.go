package learnpath

// Domain is a skill area a learner can be scored on. Identity is the name.
type Domain string

// Difficulty is the difficulty the quiz behind a score was taken at.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultDifficulty is applied to score entries recorded without one.
const DefaultDifficulty = DifficultyMedium

// Priority ranks a module within a plan.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
)

// Label returns the display label for the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityCritical:
		return "Critical"
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Polish"
	}
	return string(p)
}

// ResourceType is the kind of external learning artifact.
type ResourceType string

const (
	ResourceYouTube  ResourceType = "youtube"
	ResourceCoursera ResourceType = "coursera"
	ResourceArticle  ResourceType = "article"
	ResourcePractice ResourceType = "practice"
)

// ScoreEntry is a self-assessment score for one domain.
type ScoreEntry struct {
	Domain     Domain     `json:"domain"`
	Score      int        `json:"score"`
	Difficulty Difficulty `json:"difficulty"`
}

// Resource is a single learning artifact attached to a module.
type Resource struct {
	Type       ResourceType `json:"type"`
	Title      string       `json:"title"`
	Why        string       `json:"why"`
	URL        string       `json:"url"`
	Duration   string       `json:"duration"`
	Difficulty string       `json:"difficulty"`
}

// Module is one skill-domain unit of a plan.
type Module struct {
	ID             int        `json:"id,omitempty"`
	Domain         Domain     `json:"domain"`
	Title          string     `json:"title"`
	Priority       Priority   `json:"priority"`
	WhyThisNow     string     `json:"why_this_now"`
	CurrentScore   int        `json:"current_score"`
	TargetScore    int        `json:"target_score"`
	EstimatedWeeks int        `json:"estimated_weeks"`
	Milestone      string     `json:"milestone"`
	Resources      []Resource `json:"resources"`
}

// Plan is a learning path as returned by the plan generator. A Plan is never
// mutated after it is received; adaptation produces a replacement.
type Plan struct {
	OverallReadiness  int      `json:"overall_readiness"`
	TargetRole        string   `json:"target_role"`
	TotalWeeks        int      `json:"total_weeks"`
	NextAction        string   `json:"next_action"`
	MotivationalNote  string   `json:"motivational_note"`
	AdaptedFromScores bool     `json:"adapted_from_scores"`
	Modules           []Module `json:"modules"`
}

// DomainInfo describes a domain offered for self-assessment.
type DomainInfo struct {
	Domain Domain
	Icon   string
}

var defaultDomains = []DomainInfo{
	{Domain: "React / Frontend", Icon: "⚛"},
	{Domain: "Node.js / Backend", Icon: "⬢"},
	{Domain: "System Design", Icon: "▦"},
	{Domain: "DevOps / Cloud", Icon: "☁"},
	{Domain: "Machine Learning", Icon: "◎"},
	{Domain: "DSA", Icon: "⧉"},
	{Domain: "Python", Icon: "∿"},
	{Domain: "Databases / SQL", Icon: "▤"},
}

// DefaultDomains returns the catalog of domains offered for scoring.
// Domains outside the catalog are still accepted by the ScoreStore.
func DefaultDomains() []DomainInfo {
	out := make([]DomainInfo, len(defaultDomains))
	copy(out, defaultDomains)
	return out
}
