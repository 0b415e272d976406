package database

import (
	"log"

	"gamerental/cli/internal/models"

	"gorm.io/gorm"
)

// Seeder fills an empty development database with a few accounts and
// catalog entries so a fresh install is immediately usable.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders. Each step is idempotent.
func (s *Seeder) Run() error {
	if err := s.seedStaff(); err != nil {
		return err
	}
	if err := s.seedCatalog(); err != nil {
		return err
	}
	log.Println("Database seeding completed")
	return nil
}

// seedStaff creates a default manager and employee if no staff exists yet.
func (s *Seeder) seedStaff() error {
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("role IN ?", []string{models.RoleManager, models.RoleEmployee}).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	staff := []models.User{
		{Login: "admin", Password: "admin", Role: models.RoleManager, PhoneNum: "000-0000"},
		{Login: "clerk", Password: "clerk", Role: models.RoleEmployee, PhoneNum: "000-0001"},
	}
	if err := s.db.Create(&staff).Error; err != nil {
		return err
	}

	log.Println("Seeded default manager and employee accounts")
	return nil
}

// seedCatalog inserts demo games into an empty catalog.
func (s *Seeder) seedCatalog() error {
	var count int64
	if err := s.db.Model(&models.Game{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	games := []models.Game{
		{GameID: "game0001", GameName: "Starfall Odyssey", Genre: "RPG", Price: 14.99, Description: "Open-world space RPG", ImageURL: "img/starfall.png"},
		{GameID: "game0002", GameName: "Circuit Rally", Genre: "Racing", Price: 9.99, Description: "Arcade kart racing", ImageURL: "img/rally.png"},
		{GameID: "game0003", GameName: "Dungeon Shift", Genre: "Roguelike", Price: 12.49, Description: "Procedural dungeon crawler", ImageURL: "img/dungeon.png"},
		{GameID: "game0004", GameName: "Harvest Lane", Genre: "Simulation", Price: 7.99, Description: "Cozy farming sim", ImageURL: "img/harvest.png"},
	}
	if err := s.db.Create(&games).Error; err != nil {
		return err
	}

	log.Println("Seeded demo catalog")
	return nil
}
