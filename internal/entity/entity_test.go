package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/gestion/internal/crud"
)

func TestAreaDraftRoundTrip(t *testing.T) {
	s := AreaSchema{}
	a := Area{Key: 3, IDArea: 3, Nombre: "Matemáticas", Sede: "Norte"}

	d := s.ToDraft(a)
	require.Equal(t, crud.Draft{"nombre": "Matemáticas", "sede": "Norte"}, d)

	got, err := s.FromDraft(d.With("nombre", "Física"), &a, 99)
	require.NoError(t, err)
	require.Equal(t, Area{Key: 3, IDArea: 3, Nombre: "Física", Sede: "Norte"}, got)
}

func TestAreaFromDraftNewIdentityMirrorsKey(t *testing.T) {
	got, err := AreaSchema{}.FromDraft(crud.Draft{"nombre": "", "sede": ""}, nil, 5)
	require.NoError(t, err)
	require.Equal(t, 5, got.Key)
	require.Equal(t, 5, got.IDArea)
	require.Empty(t, got.Nombre)
}

func TestProgramaTipoCoercion(t *testing.T) {
	s := ProgramaSchema{}

	d := s.ToDraft(Programa{Key: 1, IDPrograma: 1, Nombre: "Grado", Tipo: 2})
	require.Equal(t, "2", d.Get("tipo"))

	got, err := s.FromDraft(crud.Draft{"nombre": "Posgrado", "tipo": " 7 "}, nil, 4)
	require.NoError(t, err)
	require.Equal(t, 7, got.Tipo)

	got, err = s.FromDraft(crud.Draft{"nombre": "Posgrado", "tipo": ""}, nil, 4)
	require.NoError(t, err)
	require.Equal(t, 0, got.Tipo)
}

func TestProgramaNonNumericTipoIsParseError(t *testing.T) {
	got, err := ProgramaSchema{}.FromDraft(crud.Draft{"nombre": "X", "tipo": "abc"}, nil, 2)

	var pe *crud.ParseError
	require.True(t, errors.As(err, &pe), "expected ParseError, got %v", err)
	require.Equal(t, "tipo", pe.Field)
	require.Equal(t, "abc", pe.Value)
	require.Equal(t, KindPrograma, pe.Kind)
	// the entity is still built, with tipo coerced to zero
	require.Equal(t, Programa{Key: 2, IDPrograma: 2, Nombre: "X", Tipo: 0}, got)
}

func TestValidateReportsRequiredFieldsByFormName(t *testing.T) {
	err := AreaSchema{}.Validate(Area{Key: 1, IDArea: 1, Sede: "Sur"})

	var ve *crud.ValidationError
	require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
	require.Equal(t, "nombre", ve.Field)
	require.Equal(t, "required", ve.Rule)

	require.NoError(t, ProgramaSchema{}.Validate(Programa{Nombre: "Grado"}))
}

func TestColumnsCarryTableContract(t *testing.T) {
	cols := AreaSchema{}.Columns()
	require.Len(t, cols, 4)
	require.Equal(t, "id_area", cols[0].Key)
	require.True(t, cols[0].Sortable)
	require.Equal(t, "acciones", cols[3].Key)
	require.False(t, cols[3].Sortable)
	require.Equal(t, "12", cols[0].Render(Area{IDArea: 12}))
}

func TestFormLabelsSeparateListAndSubmitButtons(t *testing.T) {
	for _, l := range []crud.Labels{AreaSchema{}.Labels(), ProgramaSchema{}.Labels()} {
		require.Equal(t, "Crear", l.SubmitCreate)
		require.Equal(t, "Actualizar", l.UpdateAction)
		require.Equal(t, "Crear "+l.Singular, l.CreateAction)
	}
}

func TestProgramaToDraftStringifiesTipo(t *testing.T) {
	d := ProgramaSchema{}.ToDraft(Programa{Key: 1, IDPrograma: 1, Nombre: "Grado", Tipo: 2})
	require.Equal(t, crud.Draft{"nombre": "Grado", "tipo": "2"}, d)
}
