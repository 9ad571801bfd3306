package catalog

// Category represents the product line a catalog item belongs to.
type Category string

const (
	CategoryGlass       Category = "glass"
	CategoryAluminum    Category = "aluminum"
	CategoryAccessories Category = "accessories"
)

// IsValid returns true if the category is one of the defined constants.
func (c Category) IsValid() bool {
	switch c {
	case CategoryGlass, CategoryAluminum, CategoryAccessories:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}
