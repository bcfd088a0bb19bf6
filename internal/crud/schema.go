package crud

// Field describes one editable draft field.
type Field struct {
	Name    string
	Label   string
	Numeric bool
}

// Column is one entry of the tabular contract. Render may be nil, in which
// case the widget shows nothing for that column.
type Column[E any] struct {
	Key        string
	Label      string
	Sortable   bool
	Filterable bool
	Render     func(E) string
	// Compare orders two items for sorting; nil falls back to Render.
	Compare func(a, b E) int
}

// Labels are the user-facing strings of one entity kind.
type Labels struct {
	Singular      string
	Plural        string
	NewTitle      string
	EditTitle     string
	// CreateAction labels the list's create button; SubmitCreate and
	// UpdateAction label the form's submit button.
	CreateAction  string
	SubmitCreate  string
	UpdateAction  string
	ConfirmDelete string
}

// Schema maps one entity kind to and from its draft representation.
//
// ToDraft and FromDraft are total: FromDraft always returns a fully built
// entity and reports coercion failures as *ParseError next to it.
type Schema[E any] interface {
	Kind() string
	Labels() Labels
	Fields() []Field
	Columns() []Column[E]
	DefaultSort() string
	Key(e E) int
	ToDraft(e E) Draft
	// FromDraft builds an entity from d. When existing is non-nil its identity
	// is kept; otherwise key becomes the new identity.
	FromDraft(d Draft, existing *E, key int) (E, error)
}

// Validator is implemented by schemas that can check required fields.
type Validator[E any] interface {
	Validate(e E) error
}

// TableSpec is what the controller hands to a tabular view.
type TableSpec[E any] struct {
	Columns     []Column[E]
	Items       []E
	PageSize    int
	DefaultSort string
}
