package model

// OptionKind distinguishes the three customization catalogs.
type OptionKind string

const (
	// OptionColor is a body color choice, available for every grade.
	OptionColor OptionKind = "color"
	// OptionInterior is an interior add-on linked to specific grades.
	OptionInterior OptionKind = "interior"
	// OptionExterior is an exterior add-on linked to specific grades.
	OptionExterior OptionKind = "exterior"
)

// Option is an optional add-on with its own incremental price. ID is the
// storage-assigned primary key and is stable across loads. GradeID is zero
// for colors, which apply to every grade.
type Option struct {
	Name     string
	ImageURL string
	Kind     OptionKind
	ID       int64
	GradeID  int64
	Price    int64
}
