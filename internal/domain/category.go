package domain

type CategoryKind string

const (
	CategoryKind_Global        CategoryKind = "global"
	CategoryKind_Region        CategoryKind = "region"
	CategoryKind_Segment       CategoryKind = "segment"
	CategoryKind_Installations CategoryKind = "installations"
)

// CategoryDescriptor declares one projectable category. Descriptors are
// iterated in declared order, which fixes the output row order - never
// alphabetical.
type CategoryDescriptor struct {
	ID          string
	DisplayName string
	Kind        CategoryKind
	// ShareBase names the category whose blended estimate this category's
	// share is taken against, e.g. regions against the global market size.
	// Empty means no share is derived.
	ShareBase string
}
