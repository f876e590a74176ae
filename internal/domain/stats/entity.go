package stats

// AssignmentImpact is the contribution of one assignment to an employee's
// totals. Derived and ephemeral: recomputed on demand, never persisted.
type AssignmentImpact struct {
	Francos          float64 `json:"francos"`        // days off (1 per franco, 0.5 per medio franco)
	NormalHours      float64 `json:"normal_hours"`   // worked hours up to the daily ceiling
	OvertimeHours    float64 `json:"overtime_hours"` // worked hours beyond the ceiling
	LeaveHours       float64 `json:"leave_hours"`    // licencia hours
	HalfDayHours     float64 `json:"half_day_hours"` // worked hours attached to a medio franco
	ContributesWork  bool    `json:"contributes_work"`
	ContributesLeave bool    `json:"contributes_leave"`
}

// Add accumulates another impact into this one.
func (i *AssignmentImpact) Add(other AssignmentImpact) {
	i.Francos += other.Francos
	i.NormalHours += other.NormalHours
	i.OvertimeHours += other.OvertimeHours
	i.LeaveHours += other.LeaveHours
	i.HalfDayHours += other.HalfDayHours
	i.ContributesWork = i.ContributesWork || other.ContributesWork
	i.ContributesLeave = i.ContributesLeave || other.ContributesLeave
}

// DayHours is the resolved worked-hours split for one employee-day.
type DayHours struct {
	NormalHours     float64 `json:"normal_hours"`
	OvertimeHours   float64 `json:"overtime_hours"`
	ComputableHours float64 `json:"computable_hours"` // NormalHours + OvertimeHours
}

// EmployeeStats aggregates impacts across a date range for one employee.
type EmployeeStats struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	Francos       float64 `json:"francos"`
	NormalHours   float64 `json:"normal_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	LeaveHours    float64 `json:"leave_hours"`
	HalfDayHours  float64 `json:"half_day_hours"`
	DaysWorked    int     `json:"days_worked"`
	DaysOnLeave   int     `json:"days_on_leave"`
}

// ComputableHours is the derived monthly total: normal + overtime + leave.
// Never stored independently.
func (s EmployeeStats) ComputableHours() float64 {
	return s.NormalHours + s.OvertimeHours + s.LeaveHours
}

// Accumulate folds one assignment impact into the running totals.
func (s *EmployeeStats) Accumulate(impact AssignmentImpact) {
	s.Francos += impact.Francos
	s.NormalHours += impact.NormalHours
	s.OvertimeHours += impact.OvertimeHours
	s.LeaveHours += impact.LeaveHours
	s.HalfDayHours += impact.HalfDayHours
	if impact.ContributesWork {
		s.DaysWorked++
	}
	if impact.ContributesLeave {
		s.DaysOnLeave++
	}
}
