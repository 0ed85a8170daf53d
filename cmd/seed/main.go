// Command main runs the database seeder for PrayerHub.
package main

import (
	"flag"
	"log"

	"prayerhub/internal/config"
	"prayerhub/internal/database"
	"prayerhub/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 50, "Number of users to create")
	numGroups := flag.Int("groups", 10, "Number of groups to create")
	numPrayers := flag.Int("prayers", 200, "Number of prayers to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	presetFile := flag.String("presets", "internal/seed/seed.yml", "Path to the preset file")
	preset := flag.String("preset", "", "Apply a named seeder preset (e.g., MegaPopulated)")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *preset != "" {
		log.Printf("Applying preset: %s (ignoring other flags)", *preset)
		if err := s.ApplyPreset(*presetFile, *preset); err != nil {
			log.Fatalf("Preset seeding failed: %v", err)
		}
	} else {
		if *shouldClean {
			if err := s.ClearAll(); err != nil {
				log.Fatalf("Cleanup failed: %v", err)
			}
		}
		if err := s.SeedCommunity(seed.Options{
			NumUsers:   *numUsers,
			NumGroups:  *numGroups,
			NumPrayers: *numPrayers,
		}); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Println("All generated users have the password: Password123!demo")
}
