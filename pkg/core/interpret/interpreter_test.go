package interpret

import (
	"strings"
	"testing"

	"ratio_analysis/pkg/core/benchmark"
)

func TestHigherIsBetterTiers(t *testing.T) {
	// Technology roe bands: excellent 0.25, good 0.18, acceptable 0.12.
	cases := []struct {
		value  float64
		rating string
	}{
		{0.30, RatingExcellent},
		{0.25, RatingExcellent}, // boundary is inclusive
		{0.20, RatingGood},
		{0.12, RatingAcceptable},
		{0.05, RatingPoor},
	}
	for _, c := range cases {
		got := Interpret("roe", c.value, "technology")
		if got.Rating != c.rating {
			t.Errorf("roe=%v rating = %s, want %s", c.value, got.Rating, c.rating)
		}
		if got.Message == "" {
			t.Errorf("roe=%v has empty message", c.value)
		}
	}

	// The Good tier message names the active industry.
	good := Interpret("roe", 0.20, "technology")
	if !strings.Contains(good.Message, "technology industry") {
		t.Errorf("good message = %q", good.Message)
	}
}

func TestLowerIsBetterTiers(t *testing.T) {
	// Technology debt_to_equity bands: excellent 0.3, good 0.5, acceptable 1.0.
	cases := []struct {
		value  float64
		rating string
	}{
		{0.2, RatingExcellent},
		{0.4, RatingGood},
		{0.9, RatingAcceptable},
		{1.5, RatingPoor},
	}
	for _, c := range cases {
		got := Interpret("debt_to_equity", c.value, "technology")
		if got.Rating != c.rating {
			t.Errorf("d/e=%v rating = %s, want %s", c.value, got.Rating, c.rating)
		}
	}
}

func TestRangedPERatioTiers(t *testing.T) {
	// Technology pe bands: undervalued 15, fair 25, growth 35, expensive 50.
	cases := []struct {
		value  float64
		rating string
	}{
		{10, RatingUndervalued},
		{20, RatingFairValue},
		{30, RatingGrowthPremium},
		{60, RatingExpensive},
	}
	for _, c := range cases {
		got := Interpret("pe_ratio", c.value, "technology")
		if got.Rating != c.rating {
			t.Errorf("pe=%v rating = %s, want %s", c.value, got.Rating, c.rating)
		}
	}
}

func TestNegativePERatioStaysNA(t *testing.T) {
	// Negative earnings: the rating stays N/A but the benchmark band is
	// still attached and the generic recommendation applies.
	got := Interpret("pe_ratio", -5, "technology")
	if got.Rating != RatingNA {
		t.Errorf("negative pe rating = %s, want N/A", got.Rating)
	}
	if len(got.Benchmark) == 0 {
		t.Error("negative pe lost its benchmark band")
	}
	if got.Recommendation != benchmark.FallbackRecommendation {
		t.Errorf("negative pe recommendation = %q", got.Recommendation)
	}
}

func TestUnbenchmarkedRatioIsNA(t *testing.T) {
	// quick_ratio has no band in any catalog: N/A rating, empty
	// recommendation, no benchmark attached.
	got := Interpret("quick_ratio", 1.4, "technology")
	if got.Rating != RatingNA {
		t.Errorf("rating = %s, want N/A", got.Rating)
	}
	if got.Recommendation != "" {
		t.Errorf("recommendation = %q, want empty", got.Recommendation)
	}
	if got.Benchmark != nil {
		t.Error("benchmark should be empty for an unbenchmarked ratio")
	}
	if got.Value != 1.4 {
		t.Errorf("value = %v", got.Value)
	}
}

func TestUnknownIndustryUsesGeneralBands(t *testing.T) {
	// General roe bands: excellent 0.20, good 0.15. 0.16 is Good under the
	// fallback even though it would be Acceptable under technology bands.
	got := Interpret("roe", 0.16, "aerospace")
	if got.Rating != RatingGood {
		t.Errorf("aerospace roe=0.16 rating = %s, want Good", got.Rating)
	}
	if !strings.Contains(got.Message, "general industry") {
		t.Errorf("fallback message = %q", got.Message)
	}
}

func TestInterpretIsDeterministic(t *testing.T) {
	a := Interpret("current_ratio", 1.9, "Retail")
	b := Interpret("current_ratio", 1.9, "retail")
	if a.Rating != b.Rating || a.Message != b.Message || a.Recommendation != b.Recommendation {
		t.Error("identical inputs produced different interpretations")
	}
}

func TestRecommendationAttachment(t *testing.T) {
	poor := Interpret("current_ratio", 0.5, "general")
	if poor.Rating != RatingPoor {
		t.Fatalf("rating = %s", poor.Rating)
	}
	want := "Consider improving working capital management, reducing short-term debt, or increasing liquid assets"
	if poor.Recommendation != want {
		t.Errorf("recommendation = %q", poor.Recommendation)
	}
}
