package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedDepartments(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'departments'...")

	query := `INSERT INTO departments (name) VALUES ($1) ON CONFLICT (name) DO NOTHING;`

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, name := range departmentsData {
		if _, err := tx.Exec(ctx, query, name); err != nil {
			log.Printf("Ошибка при вставке департамента '%s': %v", name, err)
			return err
		}
	}

	return tx.Commit(ctx)
}
