// seed-admin bootstraps (or promotes) the shop owner's account. Useful
// when the first registrant rule is not wanted, or after a restore.
package main

import (
	"flag"
	"log"

	"go-storefront/internal/config"
	"go-storefront/internal/model"
	"go-storefront/pkg/database"
)

func main() {
	email := flag.String("email", "", "admin account email")
	password := flag.String("password", "", "password for a newly created account")
	name := flag.String("name", "Shop Owner", "display name for a newly created account")
	flag.Parse()

	if *email == "" {
		log.Fatal("-email is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database. \n", err)
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		log.Fatal("Failed to migrate schema. \n", err)
	}

	var user model.User
	if err := db.Where("email = ?", *email).First(&user).Error; err == nil {
		if err := db.Model(&user).Update("role", model.RoleAdmin).Error; err != nil {
			log.Fatalf("Failed to promote %s: %v", *email, err)
		}
		log.Printf("Promoted existing account %s to admin", *email)
		return
	}

	if *password == "" {
		log.Fatal("-password is required when the account does not exist yet")
	}

	user = model.User{
		Email: *email,
		Name:  *name,
		Role:  model.RoleAdmin,
	}
	if err := user.SetPassword(*password); err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	log.Printf("Created admin account %s (id=%d)", user.Email, user.ID)
}
