package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/gestion/internal/database"
	"github.com/jask/gestion/internal/entity"
)

// AreaRepo handles the areas snapshot.
type AreaRepo struct {
	db *sql.DB
}

func NewAreaRepo(db *sql.DB) *AreaRepo {
	return &AreaRepo{db: db}
}

// List returns the areas in the order they were saved.
func (r *AreaRepo) List(ctx context.Context) ([]entity.Area, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT item_key, id_area, nombre, sede FROM areas ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []entity.Area
	for rows.Next() {
		var a entity.Area
		if err := rows.Scan(&a.Key, &a.IDArea, &a.Nombre, &a.Sede); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ReplaceAll overwrites the stored snapshot with items in one transaction.
func (r *AreaRepo) ReplaceAll(ctx context.Context, items []entity.Area) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM areas`); err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO areas(item_key, id_area, nombre, sede, position) VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, a := range items {
			if _, err := stmt.ExecContext(ctx, a.Key, a.IDArea, a.Nombre, a.Sede, i); err != nil {
				return fmt.Errorf("insert area %d: %w", a.Key, err)
			}
		}
		return nil
	})
}
