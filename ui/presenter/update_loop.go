package presenter

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Tool     *ToolStatePresenter
	Jobs     *JobFilterPresenter
	Schedule func()
}

func NewLoop(tool *ToolStatePresenter, jobs *JobFilterPresenter, schedule func()) *Loop {
	return &Loop{Tool: tool, Jobs: jobs, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	if l.Tool != nil {
		l.Tool.Tick()
	}
	if l.Jobs != nil {
		l.Jobs.Tick()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
