// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"prayerhub/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder.
type Options struct {
	NumUsers   int
	NumPrayers int
	NumGroups  int
}

// Seeder drives bulk demo-data creation.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	rand    *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Seeder{
		db:      db,
		factory: NewFactory(db),
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll truncates all seeded tables. Postgres only.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE prayers, membership_requests, group_memberships, groups, prayer_categories, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

// SeedCommunity populates the database with users, groups, memberships,
// pending requests, and prayers spread across privacy levels.
func (s *Seeder) SeedCommunity(opts Options) error {
	log.Printf("Seeding %d users, %d groups, %d prayers...",
		opts.NumUsers, opts.NumGroups, opts.NumPrayers)

	if err := Categories(s.db); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	var categories []models.PrayerCategory
	if err := s.db.Find(&categories).Error; err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	// A known admin account for manual testing.
	admin, err := s.factory.CreateUser(func(u *models.User) {
		u.Email = "admin@example.com"
		u.FullName = "Site Admin"
		u.Role = models.UserRoleAdmin
	})
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	users := []*models.User{admin}
	for i := 1; i < opts.NumUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)
	}
	log.Printf("Created %d users", len(users))

	groups := make([]*models.Group, 0, opts.NumGroups)
	for i := 0; i < opts.NumGroups; i++ {
		creator := users[s.rand.Intn(len(users))]
		group, err := s.factory.CreateGroup(creator)
		if err != nil {
			log.Printf("Failed to create group: %v", err)
			continue
		}
		groups = append(groups, group)

		// A handful of extra members per group.
		for j := 0; j < 3+s.rand.Intn(5); j++ {
			member := users[s.rand.Intn(len(users))]
			if member.ID == creator.ID {
				continue
			}
			// Composite PK rejects duplicate memberships; ignore those.
			_ = s.factory.CreateMembership(group, member, models.GroupRoleMember)
		}

		// Pending requests against private groups.
		if group.IsPrivate {
			requester := users[s.rand.Intn(len(users))]
			_, _ = s.factory.CreateMembershipRequest(group, requester)
		}
	}
	log.Printf("Created %d groups", len(groups))

	created := 0
	for i := 0; i < opts.NumPrayers; i++ {
		author := users[s.rand.Intn(len(users))]
		_, err := s.factory.CreatePrayer(author, func(p *models.Prayer) {
			if len(categories) > 0 && s.rand.Float32() < 0.8 {
				p.CategoryID = &categories[s.rand.Intn(len(categories))].ID
			}
			switch s.rand.Intn(10) {
			case 0, 1:
				p.PrivacyLevel = models.PrivacyPrivate
			case 2, 3:
				if len(groups) > 0 {
					group := groups[s.rand.Intn(len(groups))]
					p.PrivacyLevel = models.PrivacyGroup
					p.GroupID = &group.ID
				}
			}
			p.PrayerCount = uint(s.rand.Intn(40))
		})
		if err != nil {
			log.Printf("Failed to create prayer: %v", err)
			continue
		}
		created++
	}
	log.Printf("Created %d prayers", created)

	log.Println("Database seeding completed")
	return nil
}
