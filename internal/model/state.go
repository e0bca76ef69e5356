package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrUnknownLog = errors.New("model: unknown log")

// DefaultTaskIDs are the launch checklist items, in display order.
var DefaultTaskIDs = []string{"1", "2", "3", "4"}

type LogKind string

const (
	LogDecision LogKind = "decisionLog"
	LogParking  LogKind = "parkingLot"
)

func (k LogKind) IsValid() bool {
	switch k {
	case LogDecision, LogParking:
		return true
	default:
		return false
	}
}

type LogEntry struct {
	ID        string `json:"id,omitempty"`
	Idea      string `json:"idea"`
	Decision  string `json:"decision"`
	Timestamp string `json:"timestamp"`
}

type AppState struct {
	Tasks       map[string]bool `json:"tasks"`
	DecisionLog []LogEntry      `json:"decisionLog"`
	ParkingLot  []LogEntry      `json:"parkingLot"`
}

func DefaultState() AppState {
	tasks := make(map[string]bool, len(DefaultTaskIDs))
	for _, id := range DefaultTaskIDs {
		tasks[id] = false
	}
	return AppState{
		Tasks:       tasks,
		DecisionLog: []LogEntry{},
		ParkingLot:  []LogEntry{},
	}
}

func (s AppState) Clone() AppState {
	out := AppState{
		Tasks:       make(map[string]bool, len(s.Tasks)),
		DecisionLog: make([]LogEntry, len(s.DecisionLog)),
		ParkingLot:  make([]LogEntry, len(s.ParkingLot)),
	}
	for id, done := range s.Tasks {
		out.Tasks[id] = done
	}
	copy(out.DecisionLog, s.DecisionLog)
	copy(out.ParkingLot, s.ParkingLot)
	return out
}

// EnsureTasks adds any missing checklist id as not done and reports whether
// the state changed. Stored ids outside the checklist are left alone.
func (s *AppState) EnsureTasks(ids []string) bool {
	changed := false
	if s.Tasks == nil {
		s.Tasks = make(map[string]bool, len(ids))
		changed = true
	}
	for _, id := range ids {
		if _, ok := s.Tasks[id]; !ok {
			s.Tasks[id] = false
			changed = true
		}
	}
	if s.DecisionLog == nil {
		s.DecisionLog = []LogEntry{}
	}
	if s.ParkingLot == nil {
		s.ParkingLot = []LogEntry{}
	}
	return changed
}

func (s *AppState) SetTask(id string, done bool) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: task id is required", ErrValidation)
	}
	if s.Tasks == nil {
		s.Tasks = make(map[string]bool)
	}
	s.Tasks[id] = done
	return nil
}

// Record prepends entry to the target log.
func (s *AppState) Record(kind LogKind, entry LogEntry) error {
	switch kind {
	case LogDecision:
		s.DecisionLog = append([]LogEntry{entry}, s.DecisionLog...)
	case LogParking:
		s.ParkingLot = append([]LogEntry{entry}, s.ParkingLot...)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLog, kind)
	}
	return nil
}

func (s AppState) Log(kind LogKind) []LogEntry {
	if kind == LogParking {
		return s.ParkingLot
	}
	return s.DecisionLog
}

func NewLogEntry(idea, decision string, now time.Time) LogEntry {
	return LogEntry{
		ID:        uuid.NewString(),
		Idea:      idea,
		Decision:  decision,
		Timestamp: FormatTimestamp(now),
	}
}

// FormatTimestamp renders t the way the ko-KR locale prints a date-time,
// e.g. "2026. 2. 9. 오후 3:04:05".
func FormatTimestamp(t time.Time) string {
	meridiem := "오전"
	hour := t.Hour()
	if hour >= 12 {
		meridiem = "오후"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d. %d. %d. %s %d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), meridiem, hour, t.Minute(), t.Second())
}
