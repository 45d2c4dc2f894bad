package blochviz

import (
	"fmt"
	"strings"
	"time"
)

/*
Tracker records the human-readable history of applied gates for a session
and decides when the interaction surface has to stop accepting new gates.

Every recorded gate counts as exactly one operation, no matter how many
characters its label has. "Rx" and "SD" are one operation each, the same as
"x" or "H". The history is append-only until Clear is called.

Clearing the tracker does not touch the Engine. Callers that clear one are
expected to clear the other so that history and state stay consistent;
Session does this for you.
*/
type Tracker struct {
	maxOperations int
	ledger        []OperationRecord

	// OnRecord, if set, receives the updated display text after every Record.
	OnRecord func(history string)
}

/*
OperationRecord is an immutable entry in the operation history.
Sequence numbers restart at zero after Clear.
*/
type OperationRecord struct {
	Label      string
	Sequence   uint64
	RecordedAt time.Time
}

/*
NewTracker creates an empty tracker.

Parameters:
  - opts: configuration options; only the operation cap is read

Example:

	tracker := NewTracker(WithMaxOperations(10))
*/
func NewTracker(opts ...Option) *Tracker {
	cfg := applyOptions(opts)
	return &Tracker{
		maxOperations: cfg.MaxOperations,
		ledger:        make([]OperationRecord, 0, cfg.MaxOperations),
	}
}

/*
Record appends a gate label to the history. Once the tracker is at capacity
the label is refused and the ledger is left unchanged.

Parameters:
  - label: the display label of the applied gate

Returns:
  - string: the full history text after the append
  - error: ErrAtCapacity when the cap has already been reached
*/
func (t *Tracker) Record(label string) (string, error) {
	if t.AtCapacity() {
		return t.Text(), fmt.Errorf("%w: %d operations", ErrAtCapacity, len(t.ledger))
	}

	t.ledger = append(t.ledger, OperationRecord{
		Label:      label,
		Sequence:   uint64(len(t.ledger)),
		RecordedAt: time.Now(),
	})

	text := t.Text()
	if t.OnRecord != nil {
		t.OnRecord(text)
	}
	return text, nil
}

// CountOperations returns the number of recorded gates.
func (t *Tracker) CountOperations() int {
	return len(t.ledger)
}

// AtCapacity is true once the operation cap has been reached.
func (t *Tracker) AtCapacity() bool {
	return len(t.ledger) >= t.maxOperations
}

// Remaining is how many more gates can be recorded before AtCapacity.
func (t *Tracker) Remaining() int {
	if r := t.maxOperations - len(t.ledger); r > 0 {
		return r
	}
	return 0
}

// Clear empties the history.
func (t *Tracker) Clear() {
	t.ledger = t.ledger[:0]
}

// Text concatenates the labels in the order they were recorded.
func (t *Tracker) Text() string {
	var sb strings.Builder
	for _, record := range t.ledger {
		sb.WriteString(record.Label)
	}
	return sb.String()
}

// History returns a copy of the ledger.
func (t *Tracker) History() []OperationRecord {
	out := make([]OperationRecord, len(t.ledger))
	copy(out, t.ledger)
	return out
}
