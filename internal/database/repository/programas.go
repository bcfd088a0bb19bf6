package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/gestion/internal/database"
	"github.com/jask/gestion/internal/entity"
)

// ProgramaRepo handles the programas snapshot.
type ProgramaRepo struct {
	db *sql.DB
}

func NewProgramaRepo(db *sql.DB) *ProgramaRepo {
	return &ProgramaRepo{db: db}
}

func (r *ProgramaRepo) List(ctx context.Context) ([]entity.Programa, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT item_key, id_programa, nombre, tipo FROM programas ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []entity.Programa
	for rows.Next() {
		var p entity.Programa
		if err := rows.Scan(&p.Key, &p.IDPrograma, &p.Nombre, &p.Tipo); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProgramaRepo) ReplaceAll(ctx context.Context, items []entity.Programa) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM programas`); err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO programas(item_key, id_programa, nombre, tipo, position) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, p := range items {
			if _, err := stmt.ExecContext(ctx, p.Key, p.IDPrograma, p.Nombre, p.Tipo, i); err != nil {
				return fmt.Errorf("insert programa %d: %w", p.Key, err)
			}
		}
		return nil
	})
}
