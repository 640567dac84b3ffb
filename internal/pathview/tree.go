package pathview

import "github.com/abhisek/pathfinder/internal/learnpath"

// DisplayTree is the UI-independent projection of a Plan.
type DisplayTree struct {
	// Empty is true when there is no plan to show.
	Empty      bool
	Header     Header
	Motivation string
	Modules    []ModuleView
}

// Header summarizes the plan's readiness and horizon.
type Header struct {
	Readiness int

	// RingFill is the readiness fraction in [0,1].
	RingFill float64

	// RingDashOffset is the unfilled arc length on a ring of
	// RingCircumference.
	RingDashOffset float64

	TargetRole string
	TotalWeeks int
	Adapted    bool
	NextAction string
}

// ModuleView is one module row, in server-returned order.
type ModuleView struct {
	Index          int
	ID             int
	Domain         learnpath.Domain
	Title          string
	Priority       learnpath.Priority
	PriorityLabel  string
	WhyThisNow     string
	CurrentScore   int
	TargetScore    int
	ScoreBarWidth  float64 // percent, [0,100]
	ScoreLabel     string
	EstimatedWeeks int
	Milestone      string
	Expanded       bool
	Resources      []ResourceView
}

// ResourceView is one resource link. Href is empty for inert links.
type ResourceView struct {
	Type       learnpath.ResourceType
	TypeTag    string
	Icon       string
	Title      string
	Why        string
	Duration   string
	Difficulty string
	URL        string
	Href       string
	Navigable  bool
}
