package seeders

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"document-system/pkg/utils"
)

// SeedSystemUser создает служебного пользователя, от имени которого
// ходят операторы. Пароль берётся из SYSTEM_USER_PASSWORD.
func SeedSystemUser(db *pgxpool.Pool) error {
	ctx := context.Background()
	log.Println("  - Создание системного пользователя...")

	email := os.Getenv("SYSTEM_USER_EMAIL")
	if email == "" {
		email = "system@document-system.local"
	}
	password := os.Getenv("SYSTEM_USER_PASSWORD")
	if password == "" {
		password = "changeme"
		log.Println("    - SYSTEM_USER_PASSWORD не задан, используется пароль по умолчанию")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (fio, email, password) VALUES ($1, $2, $3)
			  ON CONFLICT (email) DO NOTHING;`
	if _, err := db.Exec(ctx, query, "Системний оператор", email, hashed); err != nil {
		return err
	}

	log.Println("    - Системный пользователь успешно проверен/создан.")
	return nil
}
