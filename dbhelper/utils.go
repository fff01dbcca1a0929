package dbhelper

import (
	"log"

	"gorm.io/gorm"

	"dressapi/models"
)

func SetupCleaner(db *gorm.DB) func() {

	return func() {

		db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ChatLog{})
		db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Garment{})

	}
}

func Migrate(db *gorm.DB, model interface{}) {
	err := db.AutoMigrate(model)
	if err != nil {
		log.Printf("Error while migrating %s", model)
		log.Fatal(err)
	}
}
