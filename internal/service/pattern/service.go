package pattern

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/turnolab/turnos-backend-go/internal/domain/employee"
	"github.com/turnolab/turnos-backend-go/internal/domain/pattern"
	"github.com/turnolab/turnos-backend-go/internal/domain/schedule"
	"github.com/turnolab/turnos-backend-go/internal/pkg/timeutil"
)

// defaultHistoryWeeks bounds how far back pattern mining looks. Older
// schedules reflect rosters that no longer exist.
const defaultHistoryWeeks = 12

type PatternServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
	employeeRepo employee.EmployeeRepository
}

func NewPatternService(scheduleRepo schedule.ScheduleRepository, employeeRepo employee.EmployeeRepository) pattern.PatternService {
	return &PatternServiceImpl{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *PatternServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// SuggestWeek implements pattern.PatternService.
func (s *PatternServiceImpl) SuggestWeek(ctx context.Context, req pattern.SuggestionsRequest) (pattern.SuggestionsResponse, error) {
	if err := req.Validate(); err != nil {
		return pattern.SuggestionsResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return pattern.SuggestionsResponse{}, err
	}

	// A bad employee reference is a caller error, not a data-quality
	// fallback: surface it.
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return pattern.SuggestionsResponse{}, err
	}

	history, err := s.scheduleRepo.GetRecent(ctx, companyID, req.WeekStart, defaultHistoryWeeks)
	if err != nil {
		return pattern.SuggestionsResponse{}, fmt.Errorf("failed to load schedule history: %w", err)
	}

	return pattern.SuggestionsResponse{
		EmployeeID:  req.EmployeeID,
		WeekStart:   req.WeekStart,
		Suggestions: MineSuggestions(history, req.EmployeeID),
	}, nil
}

// shapeCount tracks one observed assignment shape for a day-of-week.
type shapeCount struct {
	assignments []schedule.Assignment
	count       int
	lastSeen    string // most recent date the shape occurred on
}

// MineSuggestions groups the employee's historical assignments by
// day-of-week and picks the most frequent non-empty shape per weekday.
// Ties prefer the shape seen most recently. Confidence is the fraction of
// scanned weeks the winning shape appeared in.
func MineSuggestions(history []schedule.Schedule, employeeID string) map[int]pattern.Suggestion {
	weeksScanned := len(history)
	if weeksScanned == 0 {
		return map[int]pattern.Suggestion{}
	}

	// day-of-week -> shape key -> tally
	tallies := make(map[int]map[string]*shapeCount)

	for _, doc := range history {
		for date, day := range doc.Assignments {
			assignments := day[employeeID]
			if len(assignments) == 0 {
				continue
			}
			parsed, err := timeutil.ParseDate(date)
			if err != nil {
				continue
			}
			dow := int(parsed.Weekday())

			key := shapeKey(assignments)
			byShape := tallies[dow]
			if byShape == nil {
				byShape = make(map[string]*shapeCount)
				tallies[dow] = byShape
			}
			tally := byShape[key]
			if tally == nil {
				tally = &shapeCount{assignments: assignments}
				byShape[key] = tally
			}
			tally.count++
			if date > tally.lastSeen {
				tally.lastSeen = date
			}
		}
	}

	suggestions := make(map[int]pattern.Suggestion, len(tallies))
	for dow, byShape := range tallies {
		var best *shapeCount
		for _, tally := range byShape {
			if best == nil || tally.count > best.count ||
				(tally.count == best.count && tally.lastSeen > best.lastSeen) {
				best = tally
			}
		}
		if best == nil {
			continue
		}
		confidence := float64(best.count) / float64(weeksScanned)
		if confidence > 1 {
			confidence = 1
		}
		suggestions[dow] = pattern.Suggestion{
			DayOfWeek:   dow,
			Assignments: cloneAssignments(best.assignments),
			Confidence:  confidence,
		}
	}

	return suggestions
}

// shapeKey canonicalizes an assignment list so equal shapes collide.
// Struct field order is fixed, so the JSON encoding is deterministic.
func shapeKey(assignments []schedule.Assignment) string {
	b, err := json.Marshal(assignments)
	if err != nil {
		return ""
	}
	return string(b)
}

func cloneAssignments(assignments []schedule.Assignment) []schedule.Assignment {
	out := make([]schedule.Assignment, len(assignments))
	copy(out, assignments)
	return out
}
