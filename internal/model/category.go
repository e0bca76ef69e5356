package model

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryCoCEO        Category = "co-ceo"
	CategoryPM           Category = "pm"
	CategoryEngineer     Category = "engineer"
	CategoryCodeReviewer Category = "code-reviewer"
)

const (
	TagAdopted        = "[채택]"
	TagAdoptedRevised = "[수정 후 채택]"
	TagDiscarded      = "[폐기]"
	TagNeedsReview    = "[재검토 필요]"

	reReviewMarker = "재검토"
)

// RouteFunc picks the log an extracted tag belongs to.
type RouteFunc func(tag string) (LogKind, bool)

type CategorySpec struct {
	Name        Category
	Label       string
	Template    string
	Placeholder string
	// Relaxed categories substitute DefaultTag instead of failing when the
	// review carries no final decision.
	Relaxed    bool
	DefaultTag string
	Route      RouteFunc
}

var Categories = []CategorySpec{
	{
		Name:        CategoryCoCEO,
		Label:       "Co-CEO",
		Template:    "co-ceo_prompt.md",
		Placeholder: "{CEO가 검토를 요청하는 새로운 아이디어}",
		Route:       routeStandard,
	},
	{
		Name:        CategoryPM,
		Label:       "PM",
		Template:    "pm_prompt.md",
		Placeholder: "{Co-CEO가 [채택]한 기능 아이디어}",
		Route:       routeStandard,
	},
	{
		Name:        CategoryEngineer,
		Label:       "Engineer",
		Template:    "engineer_prompt.md",
		Placeholder: "{PM이 작성한 '신규 기능 상세 명세서' 전문}",
		Route:       routeStandard,
	},
	{
		Name:        CategoryCodeReviewer,
		Label:       "Code Reviewer",
		Template:    "code_review_prompt.md",
		Placeholder: "{Engineer가 제출한 코드 변경 사항 전문}",
		Relaxed:     true,
		DefaultTag:  TagNeedsReview,
		Route:       routeCodeReview,
	},
}

// LookupCategory returns the table entry for name. Unknown names get a spec
// that follows the "{name}_prompt.md" convention with no placeholder.
func LookupCategory(name string) (CategorySpec, bool) {
	key := Category(strings.ToLower(strings.TrimSpace(name)))
	for _, c := range Categories {
		if c.Name == key {
			return c, true
		}
	}
	return CategorySpec{
		Name:     key,
		Label:    strings.ToUpper(string(key)),
		Template: fmt.Sprintf("%s_prompt.md", key),
		Route:    routeStandard,
	}, false
}

func CategoryNames() []string {
	out := make([]string, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, string(c.Name))
	}
	return out
}

func routeStandard(tag string) (LogKind, bool) {
	switch tag {
	case TagAdopted, TagAdoptedRevised:
		return LogDecision, true
	case TagDiscarded:
		return LogParking, true
	default:
		return "", false
	}
}

func routeCodeReview(tag string) (LogKind, bool) {
	if strings.Contains(tag, reReviewMarker) {
		return LogParking, true
	}
	return routeStandard(tag)
}
