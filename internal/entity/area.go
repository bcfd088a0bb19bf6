package entity

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/jask/gestion/internal/crud"
)

const KindArea = "area"

type Area struct {
	Key    int    `form:"-" json:"key"`
	IDArea int    `form:"-" json:"id_area"`
	Nombre string `form:"nombre" json:"nombre" validate:"required"`
	// Sede is free text; the form never coerces it.
	Sede string `form:"sede" json:"sede" validate:"required"`
}

// AreaSchema maps Area to its draft. The zero value is ready to use.
type AreaSchema struct{}

var areaFields = []crud.Field{
	{Name: "nombre", Label: "Nombre"},
	{Name: "sede", Label: "Sede"},
}

func (AreaSchema) Kind() string { return KindArea }

func (AreaSchema) Labels() crud.Labels {
	return crud.Labels{
		Singular:      "Area",
		Plural:        "Areas",
		NewTitle:      "Nuevo Area",
		EditTitle:     "Editar Area",
		CreateAction:  "Crear Area",
		SubmitCreate:  "Crear",
		UpdateAction:  "Actualizar",
		ConfirmDelete: "¿Está seguro de eliminar este Area?",
	}
}

func (AreaSchema) Fields() []crud.Field { return areaFields }

func (AreaSchema) DefaultSort() string { return "id_area" }

func (AreaSchema) Key(a Area) int { return a.Key }

func (AreaSchema) Columns() []crud.Column[Area] {
	return []crud.Column[Area]{
		{
			Key: "id_area", Label: "ID", Sortable: true, Filterable: true,
			Render:  func(a Area) string { return strconv.Itoa(a.IDArea) },
			Compare: func(a, b Area) int { return cmp.Compare(a.IDArea, b.IDArea) },
		},
		{
			Key: "nombre", Label: "Nombre", Sortable: true, Filterable: true,
			Render: func(a Area) string { return a.Nombre },
		},
		{
			Key: "sede", Label: "Sede", Sortable: true, Filterable: true,
			Render: func(a Area) string { return a.Sede },
		},
		actionsColumn[Area](),
	}
}

func (s AreaSchema) ToDraft(a Area) crud.Draft {
	return encodeDraft(a, s.Fields())
}

func (s AreaSchema) FromDraft(d crud.Draft, existing *Area, key int) (Area, error) {
	var a Area
	err := decodeDraft(KindArea, &a, d, s.Fields())
	if existing != nil {
		a.Key, a.IDArea = existing.Key, existing.IDArea
	} else {
		a.Key, a.IDArea = key, key
	}
	return a, err
}

func (AreaSchema) Validate(a Area) error {
	return validateStruct(KindArea, a)
}

func actionsColumn[E any]() crud.Column[E] {
	return crud.Column[E]{
		Key:   "acciones",
		Label: "Acciones",
		Render: func(E) string {
			return strings.Join([]string{"[e] Editar", "[d] Eliminar"}, "  ")
		},
	}
}
