package session

// StepStatus is the lifecycle status of a plan step.
type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepInProgress StepStatus = "in_progress"
	StepCompleted  StepStatus = "completed"
	StepBlocked    StepStatus = "blocked"
)

// PlanStep is one unit of a structured teaching plan. Steps form a
// strict linear order; the policy may skip a step by completing it
// without tutoring, but never reorders.
type PlanStep struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Approach        string     `json:"approach,omitempty"`
	SuccessCriteria string     `json:"success_criteria"`
	Status          StepStatus `json:"status"`
}

// Plan is the ordered teaching plan for a teach_me session.
type Plan struct {
	Steps []PlanStep `json:"steps"`
}

// Current returns the in-progress step, or nil if none.
func (p *Plan) Current() *PlanStep {
	if p == nil {
		return nil
	}
	for i := range p.Steps {
		if p.Steps[i].Status == StepInProgress {
			return &p.Steps[i]
		}
	}
	return nil
}

// Start promotes the first pending step to in_progress, demoting any
// step currently in progress first so at most one step is ever
// in_progress. Returns the started step, or nil when none are pending.
func (p *Plan) Start() *PlanStep {
	if p == nil {
		return nil
	}
	for i := range p.Steps {
		if p.Steps[i].Status == StepInProgress {
			p.Steps[i].Status = StepPending
		}
	}
	for i := range p.Steps {
		if p.Steps[i].Status == StepPending {
			p.Steps[i].Status = StepInProgress
			return &p.Steps[i]
		}
	}
	return nil
}

// CompleteCurrent marks the in-progress step completed and starts the
// next pending one. Returns the newly started step, or nil when the
// plan is exhausted.
func (p *Plan) CompleteCurrent() *PlanStep {
	cur := p.Current()
	if cur != nil {
		cur.Status = StepCompleted
	}
	return p.Start()
}

// AllCompleted reports whether every step is completed.
func (p *Plan) AllCompleted() bool {
	if p == nil || len(p.Steps) == 0 {
		return false
	}
	for _, s := range p.Steps {
		if s.Status != StepCompleted {
			return false
		}
	}
	return true
}

// CompletedCount returns how many steps are completed.
func (p *Plan) CompletedCount() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, s := range p.Steps {
		if s.Status == StepCompleted {
			n++
		}
	}
	return n
}
