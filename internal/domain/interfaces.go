package domain

// Item is the polymorphic interface for records that can be displayed in lists.
// Cocktail and Meal implement it directly.
type Item interface {
	// GetID returns the unique identifier for this item
	GetID() string

	// GetName returns the display name
	GetName() string

	// GetImageURL returns the thumbnail image URL
	GetImageURL() string

	// GetKind returns which catalog the item belongs to
	GetKind() ItemKind
}
