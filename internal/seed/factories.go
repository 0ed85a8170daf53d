// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"prayerhub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

var prayerTitleTemplates = []string{
	"Prayers for %s",
	"Please pray for %s",
	"Lifting up %s",
	"Asking for prayer about %s",
	"Gratitude for %s",
}

var prayerTopics = []string{
	"my mother's surgery", "a difficult job search", "our new baby",
	"healing after loss", "an upcoming move", "my son's exams",
	"a friend's recovery", "peace in our family", "guidance on a decision",
	"strength this week", "a safe journey", "our church community",
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Password123!demo"), bcrypt.DefaultCost)

	user := &models.User{
		Email:    gofakeit.Email(),
		Password: string(hashedPassword),
		FullName: gofakeit.Name(),
		Role:     models.UserRoleUser,
		Phone:    gofakeit.Phone(),
		Bio:      gofakeit.Sentence(10),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePrayer constructs and persists a sample prayer for the given author.
func (f *Factory) CreatePrayer(author *models.User, overrides ...func(*models.Prayer)) (*models.Prayer, error) {
	template := prayerTitleTemplates[f.rand.Intn(len(prayerTitleTemplates))]
	topic := prayerTopics[f.rand.Intn(len(prayerTopics))]

	prayer := &models.Prayer{
		Title:        fmt.Sprintf(template, topic),
		Content:      gofakeit.Paragraph(1, 3, 8, "\n"),
		AuthorID:     author.ID,
		Status:       models.PrayerStatusActive,
		PrivacyLevel: models.PrivacyPublic,
		IsAnonymous:  f.rand.Float32() < 0.1,
	}

	// realistic created_at spread over the past 90 days
	daysBack := f.rand.Intn(90)
	hoursBack := f.rand.Intn(24)
	prayer.CreatedAt = time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(prayer)
	}

	if err := f.db.Create(prayer).Error; err != nil {
		return nil, err
	}
	return prayer, nil
}

// CreateGroup constructs and persists a group with the creator's admin
// membership, mirroring what the API does on group creation.
func (f *Factory) CreateGroup(creator *models.User, overrides ...func(*models.Group)) (*models.Group, error) {
	group := &models.Group{
		Name:            fmt.Sprintf("%s Prayer Circle", gofakeit.City()),
		Description:     gofakeit.Sentence(12),
		IsPrivate:       f.rand.Float32() < 0.5,
		CreatedByUserID: creator.ID,
	}

	for _, override := range overrides {
		override(group)
	}

	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		membership := models.GroupMembership{
			GroupID: group.ID,
			UserID:  creator.ID,
			Role:    models.GroupRoleAdmin,
		}
		return tx.Create(&membership).Error
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// CreateMembership adds a user to a group with the given role.
func (f *Factory) CreateMembership(group *models.Group, user *models.User, role models.GroupRole) error {
	membership := models.GroupMembership{
		GroupID: group.ID,
		UserID:  user.ID,
		Role:    role,
	}
	return f.db.Create(&membership).Error
}

// CreateMembershipRequest files a pending request from a user to a group.
func (f *Factory) CreateMembershipRequest(group *models.Group, user *models.User, overrides ...func(*models.MembershipRequest)) (*models.MembershipRequest, error) {
	request := &models.MembershipRequest{
		GroupID: group.ID,
		UserID:  user.ID,
		Status:  models.MembershipRequestStatusPending,
		Reason:  gofakeit.Sentence(8),
	}

	for _, override := range overrides {
		override(request)
	}

	if err := f.db.Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}
