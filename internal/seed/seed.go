package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/uptalent/uptalent-server/internal/logger"
	"github.com/uptalent/uptalent-server/internal/model"
)

// seedPassword is the well-known password for generated dev profiles.
const seedPassword = "1234567890"

var skillPool = []string{
	"Java", "Go", "Python", "SQL", "React", "Docker",
	"Kubernetes", "Project management", "UI design", "Copywriting",
	"Data analysis", "Public speaking",
}

// Talents fills the store with count fake talent profiles. Meant for
// development environments only; existing emails are skipped.
func Talents(ctx context.Context, store model.TalentStore, hasher model.Hasher, count int, logger *logger.Logger) error {
	passwordHash, err := hasher.Hash(seedPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	seeded := 0
	for i := 0; i < count; i++ {
		talent := generateTalent(passwordHash)

		exists, err := store.ExistsByEmail(ctx, talent.Email)
		if err != nil {
			return fmt.Errorf("failed to check seed email: %w", err)
		}
		if exists {
			continue
		}

		if _, err := store.Create(ctx, talent); err != nil {
			return fmt.Errorf("failed to create seed talent: %w", err)
		}
		seeded++
	}

	logger.Info("seeded talent profiles", "count", seeded)
	return nil
}

func generateTalent(passwordHash string) model.Talent {
	firstname := clip(gofakeit.FirstName(), 15)
	lastname := clip(gofakeit.LastName(), 15)
	email := strings.ToLower(firstname) + "." + strings.ToLower(lastname) + "@gmail.com"
	location := gofakeit.Country() + ", " + gofakeit.City()
	aboutMe := clip(gofakeit.Sentence(8), 255)
	avatar := gofakeit.ImageURL(200, 200)
	banner := gofakeit.ImageURL(800, 200)
	birthday := gofakeit.DateRange(
		time.Now().AddDate(-60, 0, 0),
		time.Now().AddDate(-18, 0, 0),
	)

	return model.Talent{
		Firstname:    firstname,
		Lastname:     lastname,
		Email:        email,
		PasswordHash: passwordHash,
		Skills:       generateSkills(),
		Avatar:       &avatar,
		Banner:       &banner,
		Location:     &location,
		AboutMe:      &aboutMe,
		Birthday:     &birthday,
	}
}

func generateSkills() []string {
	size := 3 + gofakeit.Number(0, 2)
	seen := map[string]struct{}{}
	skills := make([]string, 0, size)
	for len(skills) < size {
		skill := skillPool[gofakeit.Number(0, len(skillPool)-1)]
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		skills = append(skills, skill)
	}
	return skills
}

func clip(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
