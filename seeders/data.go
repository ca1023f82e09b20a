package seeders

// Стартовый набор департаментов.
var departmentsData = []string{
	"Фінансовий департамент",
	"Юридичний департамент",
	"Департамент обслуговування клієнтів",
	"Технічний департамент",
	"Департамент безпеки",
}
