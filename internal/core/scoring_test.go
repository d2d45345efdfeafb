package core

import "testing"

func TestComputeScore_AllSubsets(t *testing.T) {
	for mask := 0; mask < 1<<len(RequiredKinds); mask++ {
		var kinds []DocumentKind
		for i, k := range RequiredKinds {
			if mask&(1<<i) != 0 {
				kinds = append(kinds, k)
			}
		}

		want := 25 * len(kinds)
		if got := ComputeScore(kinds); got != want {
			t.Errorf("ComputeScore(%v) = %d, want %d", kinds, got, want)
		}
	}
}

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name  string
		kinds []DocumentKind
		want  int
	}{
		{"none", nil, 0},
		{"duplicates count once", []DocumentKind{KindW9, KindW9, KindW9}, 25},
		{"order irrelevant", []DocumentKind{KindPolicy, KindInsurance, KindW9, KindLicense}, 100},
		{"duplicates of all four", []DocumentKind{KindW9, KindPolicy, KindW9, KindLicense, KindInsurance, KindPolicy}, 100},
		{"unknown kind ignored", []DocumentKind{"passport", KindLicense}, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeScore(tt.kinds); got != tt.want {
				t.Errorf("ComputeScore() = %d, want %d", got, tt.want)
			}
		})
	}
}
