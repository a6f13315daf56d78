package model

// Bucket classifies how a category is presented and managed.
type Bucket string

const (
	// BucketDefault holds the fixed starter set; not editable or deletable.
	BucketDefault Bucket = "default"
	// BucketCustom holds user-created categories.
	BucketCustom Bucket = "custom"
	// BucketSuggested holds optional starters the user may promote.
	BucketSuggested Bucket = "suggested"
)

// Category represents an emoji/color tag applied to transactions.
type Category struct {
	Name        string
	Emoji       string
	ColorHex    string // #RRGGBB or #AARRGGBB; invalid values render as gray
	Type        TransactionType
	ID          int64
	CreatedAt   int64 // epoch millis
	IsDefault   bool
	IsSuggested bool
}

// Bucket returns the presentation bucket this category belongs to.
// Custom is everything that is neither default nor suggested.
func (c *Category) Bucket() Bucket {
	switch {
	case c.IsDefault:
		return BucketDefault
	case c.IsSuggested:
		return BucketSuggested
	default:
		return BucketCustom
	}
}
