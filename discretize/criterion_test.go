package discretize

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/mdlp/pkg/errors"
)

func h2(p float64) float64 {
	return -(p*math.Log2(p) + (1-p)*math.Log2(1-p))
}

func TestMDLPAccept(t *testing.T) {
	tests := []struct {
		name   string
		parent RangeStats
		split  Split
		accept bool
	}{
		{
			name:   "clean two class boundary",
			parent: RangeStats{Count: 5, Classes: 2, Entropy: h2(0.6)},
			split: Split{
				LeftStats:  RangeStats{Count: 3, Classes: 1},
				RightStats: RangeStats{Count: 2, Classes: 1},
				Entropy:    0,
			},
			accept: true,
		},
		{
			name:   "noisy halves",
			parent: RangeStats{Count: 10, Classes: 2, Entropy: 1},
			split: Split{
				LeftStats:  RangeStats{Count: 5, Classes: 2, Entropy: h2(0.2)},
				RightStats: RangeStats{Count: 5, Classes: 2, Entropy: h2(0.2)},
				Entropy:    h2(0.2),
			},
			accept: false,
		},
		{
			name:   "zero gain",
			parent: RangeStats{Count: 4, Classes: 2, Entropy: 1},
			split: Split{
				LeftStats:  RangeStats{Count: 2, Classes: 2, Entropy: 1},
				RightStats: RangeStats{Count: 2, Classes: 2, Entropy: 1},
				Entropy:    1,
			},
			accept: false,
		},
		{
			name:   "two samples two classes",
			parent: RangeStats{Count: 2, Classes: 2, Entropy: 1},
			split: Split{
				LeftStats:  RangeStats{Count: 1, Classes: 1},
				RightStats: RangeStats{Count: 1, Classes: 1},
			},
			accept: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := MDLP{}.Accept(tt.parent, tt.split)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Accept != tt.accept {
				t.Errorf("Accept = %v (gain %v, threshold %v), want %v", d.Accept, d.Gain, d.Threshold, tt.accept)
			}
			if want := tt.parent.Entropy - tt.split.Entropy; d.Gain != want {
				t.Errorf("Gain = %v, want %v", d.Gain, want)
			}
		})
	}
}

func TestMDLPThreshold(t *testing.T) {
	parent := RangeStats{Count: 5, Classes: 2, Entropy: h2(0.6)}
	split := Split{
		LeftStats:  RangeStats{Count: 3, Classes: 1},
		RightStats: RangeStats{Count: 2, Classes: 1},
	}
	d, err := MDLP{}.Accept(parent, split)
	if err != nil {
		t.Fatal(err)
	}
	want := (math.Log2(4) + math.Log2(7) - 2*parent.Entropy) / 5
	if math.Abs(d.Threshold-want) > 1e-12 {
		t.Errorf("Threshold = %v, want %v", d.Threshold, want)
	}
}

func TestCriterionRequiresTwoSamples(t *testing.T) {
	for _, c := range []Criterion{MDLP{}, MinGain{Threshold: 0.1}} {
		t.Run(c.String(), func(t *testing.T) {
			_, err := c.Accept(RangeStats{Count: 1, Classes: 1}, Split{})
			var ve *errors.ValueError
			if !errors.As(err, &ve) {
				t.Errorf("expected ValueError, got %v", err)
			}
		})
	}
}

func TestMinGainAccept(t *testing.T) {
	parent := RangeStats{Count: 10, Classes: 2, Entropy: 1}
	split := Split{Entropy: h2(0.2)}
	gain := 1 - h2(0.2)

	tests := []struct {
		threshold float64
		accept    bool
	}{
		{0, true},
		{gain / 2, true},
		{gain, false},
		{0.9, false},
	}
	for _, tt := range tests {
		d, err := MinGain{Threshold: tt.threshold}.Accept(parent, split)
		if err != nil {
			t.Fatal(err)
		}
		if d.Accept != tt.accept {
			t.Errorf("MinGain{%v}.Accept = %v, want %v", tt.threshold, d.Accept, tt.accept)
		}
	}

	// a split that does not reduce entropy is never accepted
	d, _ := MinGain{Threshold: -1}.Accept(parent, Split{Entropy: 1})
	if d.Accept {
		t.Error("zero-gain split accepted")
	}
}

func TestLog2ThreePowMinusTwo(t *testing.T) {
	if got := log2ThreePowMinusTwo(1); got != 0 {
		t.Errorf("k=1: got %v, want 0", got)
	}
	if got, want := log2ThreePowMinusTwo(2), math.Log2(7); got != want {
		t.Errorf("k=2: got %v, want %v", got, want)
	}
	big := log2ThreePowMinusTwo(1000)
	if math.IsInf(big, 0) || math.Abs(big-1000*math.Log2(3)) > 1e-9 {
		t.Errorf("k=1000: got %v", big)
	}
}

func TestCriterionString(t *testing.T) {
	if got := (MDLP{}).String(); got != "mdlp" {
		t.Errorf("MDLP.String() = %q", got)
	}
	if got := (MinGain{Threshold: 0.25}).String(); got != "min_gain(0.25)" {
		t.Errorf("MinGain.String() = %q", got)
	}
}
