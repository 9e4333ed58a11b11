package columnstore

import (
	"fmt"

	"github.com/lophi-data/lophi/internal/errs"
)

// Target is the mapped binary target described in spec.md §3: after
// mapping, Event[i] is true/false only where Included[i] is true. Rows
// excluded from analysis statistics are still present in the output table.
type Target struct {
	Event    []bool
	Included []bool
	Events   int // count of included rows mapped to event
	NonEvent int // count of included rows mapped to non-event
}

// MapTarget maps a raw target column to a binary Target using the supplied
// event/non-event values. If eventValue/nonEventValue are both nil, the
// column is assumed already 0/1 and is mapped natively (1 => event).
//
// Rows whose value equals neither value are excluded from analysis
// statistics but are not removed from the Store (spec.md §3 "Target").
func MapTarget(col *Column, eventValue, nonEventValue *float64) (*Target, error) {
	values, valid, err := col.AsFloat64()
	if err != nil {
		return nil, fmt.Errorf("target column %q: %w", col.Name, err)
	}

	t := &Target{
		Event:    make([]bool, len(values)),
		Included: make([]bool, len(values)),
	}

	for i, v := range values {
		if !valid[i] {
			continue // null target rows are excluded, not fatal
		}

		switch {
		case eventValue == nil && nonEventValue == nil:
			if v == 1 {
				t.Event[i] = true
				t.Included[i] = true
				t.Events++
			} else if v == 0 {
				t.Included[i] = true
				t.NonEvent++
			}
		case eventValue != nil && v == *eventValue:
			t.Event[i] = true
			t.Included[i] = true
			t.Events++
		case nonEventValue != nil && v == *nonEventValue:
			t.Included[i] = true
			t.NonEvent++
		}
	}

	if t.Events == 0 || t.NonEvent == 0 {
		if t.Events+t.NonEvent == 0 {
			return nil, fmt.Errorf("%w: column %q", errs.ErrTargetAllExcluded, col.Name)
		}

		return nil, fmt.Errorf("%w: column %q", errs.ErrTargetSingleClass, col.Name)
	}

	return t, nil
}

// WeightedEventCounts returns weighted event and non-event totals over the
// included rows, given a weight vector (nil weight means every row has
// weight 1).
func (t *Target) WeightedEventCounts(weights []float64) (events, nonEvents float64) {
	for i, included := range t.Included {
		if !included {
			continue
		}
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		if t.Event[i] {
			events += w
		} else {
			nonEvents += w
		}
	}

	return events, nonEvents
}
