package model

import (
	"errors"
	"testing"
	"time"
)

var fixedNow = time.Date(2026, 2, 9, 15, 4, 5, 0, time.UTC)

func mustCategory(t *testing.T, name Category) CategorySpec {
	t.Helper()
	spec, ok := LookupCategory(string(name))
	if !ok {
		t.Fatalf("category %q missing from table", name)
	}
	return spec
}

func TestExtractDecision(t *testing.T) {
	cases := []struct {
		review string
		want   string
		ok     bool
	}{
		{"**- 최종 결정:** [채택]", TagAdopted, true},
		{"검토 요약\n**-   최종   결정:**   [수정 후 채택] 이유...", TagAdoptedRevised, true},
		{"**-최종 결정:**[폐기]", TagDiscarded, true},
		{"최종 결정: [채택]", "", false},
		{"**- 최종 결정:** 채택", "", false},
	}
	for _, tc := range cases {
		got, ok := ExtractDecision(tc.review)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ExtractDecision(%q) = %q,%v want %q,%v", tc.review, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNewDecisionAdoptedGoesToDecisionLog(t *testing.T) {
	d, err := NewDecision(mustCategory(t, CategoryCoCEO), "  Add dark mode ", "**- 최종 결정:** [채택]", fixedNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Target != LogDecision {
		t.Fatalf("expected decision log, got %q", d.Target)
	}
	if d.Entry.Idea != "Add dark mode" || d.Entry.Decision != TagAdopted {
		t.Fatalf("unexpected entry: %#v", d.Entry)
	}
	if d.Entry.ID == "" {
		t.Fatal("expected generated entry id")
	}
	if d.Entry.Timestamp != "2026. 2. 9. 오후 3:04:05" {
		t.Fatalf("unexpected timestamp: %q", d.Entry.Timestamp)
	}
}

func TestNewDecisionRouting(t *testing.T) {
	cases := []struct {
		category Category
		tag      string
		want     LogKind
	}{
		{CategoryCoCEO, TagAdoptedRevised, LogDecision},
		{CategoryPM, TagDiscarded, LogParking},
		{CategoryCodeReviewer, TagAdopted, LogDecision},
		{CategoryCodeReviewer, TagDiscarded, LogParking},
		// Substring routing: any tag mentioning re-review is parked.
		{CategoryCodeReviewer, "[부분 재검토]", LogParking},
	}
	for _, tc := range cases {
		d, err := NewDecision(mustCategory(t, tc.category), "idea", "**- 최종 결정:** "+tc.tag, fixedNow)
		if err != nil {
			t.Fatalf("%s %s: unexpected error: %v", tc.category, tc.tag, err)
		}
		if d.Target != tc.want {
			t.Fatalf("%s %s: target = %q, want %q", tc.category, tc.tag, d.Target, tc.want)
		}
	}
}

func TestNewDecisionValidation(t *testing.T) {
	spec := mustCategory(t, CategoryCoCEO)
	for _, in := range [][2]string{{"", "**- 최종 결정:** [채택]"}, {"idea", "   "}, {" \t", "\n"}} {
		_, err := NewDecision(spec, in[0], in[1], fixedNow)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation for %q, got %v", in, err)
		}
	}
}

func TestNewDecisionStrictCategoryRequiresTag(t *testing.T) {
	_, err := NewDecision(mustCategory(t, CategoryPM), "idea", "looks fine to me", fixedNow)
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}

func TestNewDecisionStrictCategoryRejectsUnknownTag(t *testing.T) {
	_, err := NewDecision(mustCategory(t, CategoryCoCEO), "idea", "**- 최종 결정:** [보류]", fixedNow)
	if !errors.Is(err, ErrUnknownDecision) || !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrUnknownDecision wrapping ErrExtraction, got %v", err)
	}
}

func TestNewDecisionRelaxedCategoryDefaultsTag(t *testing.T) {
	d, err := NewDecision(mustCategory(t, CategoryCodeReviewer), "refactor parser", "no verdict here", fixedNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Entry.Decision != TagNeedsReview {
		t.Fatalf("expected default tag, got %q", d.Entry.Decision)
	}
	if d.Target != LogParking {
		t.Fatalf("expected default tag to park, got %q", d.Target)
	}
}

func TestLookupCategoryFallback(t *testing.T) {
	spec, ok := LookupCategory("Designer")
	if ok {
		t.Fatal("expected unknown category")
	}
	if spec.Template != "designer_prompt.md" || spec.Placeholder != "" {
		t.Fatalf("unexpected fallback spec: %#v", spec)
	}
	cr := mustCategory(t, CategoryCodeReviewer)
	if cr.Template != "code_review_prompt.md" {
		t.Fatalf("unexpected code review template: %q", cr.Template)
	}
}
