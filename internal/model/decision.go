package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrValidation      = errors.New("model: validation failed")
	ErrExtraction      = errors.New("model: final decision not found")
	ErrUnknownDecision = fmt.Errorf("%w: unrecognized decision tag", ErrExtraction)
)

var finalDecisionPattern = regexp.MustCompile(`\*\*-\s*최종\s*결정:\*\*\s*(\[.*?\])`)

// ExtractDecision finds the bracketed tag following the bold
// "**- 최종 결정:**" marker.
func ExtractDecision(review string) (string, bool) {
	m := finalDecisionPattern.FindStringSubmatch(review)
	if m == nil {
		return "", false
	}
	return m[1], true
}

type Decision struct {
	Category Category
	Target   LogKind
	Entry    LogEntry
}

func NewDecision(category CategorySpec, idea, review string, now time.Time) (Decision, error) {
	idea = strings.TrimSpace(idea)
	review = strings.TrimSpace(review)
	if idea == "" || review == "" {
		return Decision{}, fmt.Errorf("%w: idea and review result are both required", ErrValidation)
	}

	tag, ok := ExtractDecision(review)
	if !ok {
		if !category.Relaxed {
			return Decision{}, fmt.Errorf("%w (expected: **- 최종 결정:** %s)", ErrExtraction, TagAdopted)
		}
		tag = category.DefaultTag
	}

	route := category.Route
	if route == nil {
		route = routeStandard
	}
	target, ok := route(tag)
	if !ok {
		return Decision{}, fmt.Errorf("%w: %s", ErrUnknownDecision, tag)
	}

	return Decision{
		Category: category.Name,
		Target:   target,
		Entry:    NewLogEntry(idea, tag, now),
	}, nil
}
