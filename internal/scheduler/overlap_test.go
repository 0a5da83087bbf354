package scheduler

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 1, 1, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		start1, end1, start2, end2 time.Time
		want                       bool
	}{
		{"identical windows", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"partial overlap", at(10, 0), at(11, 0), at(10, 30), at(11, 30), true},
		{"containment", at(10, 0), at(12, 0), at(10, 30), at(11, 0), true},
		{"touching endpoints", at(10, 0), at(11, 0), at(11, 0), at(12, 0), false},
		{"disjoint", at(10, 0), at(11, 0), at(12, 0), at(13, 0), false},
		{"one second apart", at(10, 0), at(11, 0), at(11, 1), at(12, 0), false},
		{"one second into the window", at(10, 0), at(11, 1), at(11, 0), at(12, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.start1, tc.end1, tc.start2, tc.end2); got != tc.want {
				t.Errorf("Overlaps(%v, %v, %v, %v) = %v, want %v",
					tc.start1, tc.end1, tc.start2, tc.end2, got, tc.want)
			}
			// The predicate must be symmetric
			if got := Overlaps(tc.start2, tc.end2, tc.start1, tc.end1); got != tc.want {
				t.Errorf("Overlaps is not symmetric for %s", tc.name)
			}
		})
	}
}

func TestValidateSegments(t *testing.T) {
	seg := func(dep, arr time.Time) SegmentUse {
		return SegmentUse{TrackSegmentID: 1, Departure: dep, Arrival: arr}
	}

	tests := []struct {
		name      string
		uses      []SegmentUse
		wantIndex int // -2 means valid
	}{
		{"empty proposal", nil, -1},
		{"single valid segment", []SegmentUse{seg(at(10, 0), at(11, 0))}, -2},
		{"departure equals arrival", []SegmentUse{seg(at(10, 0), at(10, 0))}, 0},
		{"departure after arrival", []SegmentUse{seg(at(11, 0), at(10, 0))}, 0},
		{
			"second segment goes backwards",
			[]SegmentUse{seg(at(10, 0), at(11, 0)), seg(at(10, 30), at(12, 0))},
			1,
		},
		{
			"touching segments are valid",
			[]SegmentUse{seg(at(10, 0), at(11, 0)), seg(at(11, 0), at(12, 0))},
			-2,
		},
		{
			"gap between segments is valid",
			[]SegmentUse{seg(at(10, 0), at(11, 0)), seg(at(11, 30), at(12, 0))},
			-2,
		},
		{
			"bad times reported at the right index",
			[]SegmentUse{seg(at(10, 0), at(11, 0)), seg(at(12, 0), at(11, 30))},
			1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSegments(tc.uses)
			if tc.wantIndex == -2 {
				if err != nil {
					t.Fatalf("ValidateSegments() = %v, want nil", err)
				}
				return
			}
			vErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("ValidateSegments() = %v, want *ValidationError", err)
			}
			if vErr.Index != tc.wantIndex {
				t.Errorf("ValidationError.Index = %d, want %d", vErr.Index, tc.wantIndex)
			}
		})
	}
}
