package entity

import (
	"cmp"
	"strconv"

	"github.com/jask/gestion/internal/crud"
)

const KindPrograma = "programa"

type Programa struct {
	Key        int    `form:"-" json:"key"`
	IDPrograma int    `form:"-" json:"id_programa"`
	Nombre     string `form:"nombre" json:"nombre" validate:"required"`
	Tipo       int    `form:"tipo" json:"tipo"`
}

// ProgramaSchema maps Programa to its draft. Tipo travels as a decimal string.
type ProgramaSchema struct{}

var programaFields = []crud.Field{
	{Name: "nombre", Label: "Nombre"},
	{Name: "tipo", Label: "Tipo", Numeric: true},
}

func (ProgramaSchema) Kind() string { return KindPrograma }

func (ProgramaSchema) Labels() crud.Labels {
	return crud.Labels{
		Singular:      "Programa",
		Plural:        "Programas",
		NewTitle:      "Nuevo Programa",
		EditTitle:     "Editar Programa",
		CreateAction:  "Crear Programa",
		SubmitCreate:  "Crear",
		UpdateAction:  "Actualizar",
		ConfirmDelete: "¿Está seguro de eliminar este programa?",
	}
}

func (ProgramaSchema) Fields() []crud.Field { return programaFields }

func (ProgramaSchema) DefaultSort() string { return "id_programa" }

func (ProgramaSchema) Key(p Programa) int { return p.Key }

func (ProgramaSchema) Columns() []crud.Column[Programa] {
	return []crud.Column[Programa]{
		{
			Key: "id_programa", Label: "ID", Sortable: true, Filterable: true,
			Render:  func(p Programa) string { return strconv.Itoa(p.IDPrograma) },
			Compare: func(a, b Programa) int { return cmp.Compare(a.IDPrograma, b.IDPrograma) },
		},
		{
			Key: "nombre", Label: "Nombre", Sortable: true, Filterable: true,
			Render: func(p Programa) string { return p.Nombre },
		},
		{
			Key: "tipo", Label: "Tipo", Sortable: true, Filterable: true,
			Render:  func(p Programa) string { return strconv.Itoa(p.Tipo) },
			Compare: func(a, b Programa) int { return cmp.Compare(a.Tipo, b.Tipo) },
		},
		actionsColumn[Programa](),
	}
}

func (s ProgramaSchema) ToDraft(p Programa) crud.Draft {
	return encodeDraft(p, s.Fields())
}

func (s ProgramaSchema) FromDraft(d crud.Draft, existing *Programa, key int) (Programa, error) {
	var p Programa
	err := decodeDraft(KindPrograma, &p, d, s.Fields())
	if existing != nil {
		p.Key, p.IDPrograma = existing.Key, existing.IDPrograma
	} else {
		p.Key, p.IDPrograma = key, key
	}
	return p, err
}

func (ProgramaSchema) Validate(p Programa) error {
	return validateStruct(KindPrograma, p)
}

var (
	_ crud.Schema[Area]        = AreaSchema{}
	_ crud.Validator[Area]     = AreaSchema{}
	_ crud.Schema[Programa]    = ProgramaSchema{}
	_ crud.Validator[Programa] = ProgramaSchema{}
)
