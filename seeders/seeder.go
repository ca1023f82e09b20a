package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedCoreDictionaries наполняет базовые справочники, не имеющие зависимостей.
func SeedCoreDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения базовых справочников...")

	if err := seedDepartments(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Департаментов (Departments): %v", err)
	}

	log.Println("✅ Наполнение базовых справочников завершено!")
}

// SeedUsers создает служебные учетные записи.
func SeedUsers(db *pgxpool.Pool) {
	log.Println("▶️  Запуск создания пользователей...")

	if err := SeedSystemUser(db); err != nil {
		log.Fatalf("❌ Ошибка создания системного пользователя: %v", err)
	}

	log.Println("✅ Создание пользователей завершено!")
}
