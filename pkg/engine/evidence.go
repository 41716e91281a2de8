package engine

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Source identifies where an automated suggestion or enrichment signal
// originated.
type Source string

const (
	SourceOAuth     Source = "oauth"
	SourceWeb       Source = "web"
	SourceInternal  Source = "internal"
	SourceHeuristic Source = "heuristic"
)

// Evidence correlates one automated action with the signal that caused
// it, a confidence value and the field paths it affected. Records are
// immutable once appended.
type Evidence struct {
	ID         string    `json:"id"`
	When       time.Time `json:"when"`
	Source     Source    `json:"source"`
	Signal     string    `json:"signal"`
	Confidence float64   `json:"confidence"`
	Action     string    `json:"action"`
	Fields     []string  `json:"fields"`
}

// EvidenceLog is the append-only sequence of evidence records for one
// session. There is no removal or mutation operation.
type EvidenceLog struct {
	records []Evidence
}

// NewEvidenceLog returns an empty log.
func NewEvidenceLog() *EvidenceLog {
	return &EvidenceLog{records: []Evidence{}}
}

// Record appends a new evidence record and returns it with its
// generated id and timestamp filled in. Confidence is clamped to [0,1]
// at this boundary.
func (l *EvidenceLog) Record(source Source, signal string, confidence float64, action string, fields []string) Evidence {
	id, _ := gonanoid.New()
	ev := Evidence{
		ID:         id,
		When:       time.Now(),
		Source:     source,
		Signal:     signal,
		Confidence: clamp01(confidence),
		Action:     action,
		Fields:     append([]string{}, fields...),
	}
	l.records = append(l.records, ev)
	return ev
}

// All returns the records in insertion order. The returned slice is a
// copy; the log itself stays append-only.
func (l *EvidenceLog) All() []Evidence {
	return append([]Evidence{}, l.records...)
}

// Reversed returns the records newest first.
func (l *EvidenceLog) Reversed() []Evidence {
	out := make([]Evidence, len(l.records))
	for i, ev := range l.records {
		out[len(l.records)-1-i] = ev
	}
	return out
}

// Len reports how many records have been appended.
func (l *EvidenceLog) Len() int {
	return len(l.records)
}
