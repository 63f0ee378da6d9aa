package repository

import (
	"errors"
	"fmt"

	"github.com/nekoniyah/velvetdream-website-2-0/pkg/models"
	"gorm.io/gorm"
)

var initialProjects = []struct {
	Title       string
	Description string
	Image       string
	Tags        []string
}{
	{
		Title: "Beast: Shapes of Gods",
		Description: "BSOG (Beast: Shapes of Gods) is a TCG (Trading Card Game) " +
			"inspired by League of Legends and MTG (Magic: The Gathering). " +
			"Fight with your favorite heroes and spells in a fast-paced game.",
		Image: "bsog.png",
		Tags:  []string{"TCG", "Card Game", "Strategy"},
	},
	{
		Title: "Blatant: Fight with skill",
		Description: "Blatant is a board game where you must use your resources " +
			"to enhance your pawns and reach the enemy base to win the game. " +
			"Cast unique cards to surprise your enemies, capture other enemy pawns, " +
			"manage your resources, etc. This is played between 2 and 4 players.",
		Image: "blatant.png",
		Tags:  []string{"Board Game", "Strategy"},
	},
	{
		Title:       "Coming soon...",
		Description: "We are working on new projects. Stay tuned!",
		Image:       "1.png",
		Tags:        []string{"New Project"},
	},
}

var initialPosts = []struct {
	Title   string
	Content string
	Author  string
	Image   string
}{
	{
		Title: "Welcome to VelvetDream!",
		Content: "We're excited to launch our new community hub. Stay tuned for " +
			"updates about our projects and join the discussion!",
		Author: "VelvetDream Team",
		Image:  "1.png",
	},
	{
		Title: "Development Update: Latest Progress",
		Content: "Check out our latest development progress on our upcoming " +
			"projects. We can't wait to share more details with you!",
		Author: "Development Team",
		Image:  "1.png",
	},
}

// Seed replaces the catalog and news content with the initial site content.
// The clear and the re-inserts commit or roll back as one unit.
func Seed(db *Database) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"project_tags", "tags", "projects", "company_posts"} {
			if err := tx.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		catalog := NewCatalogStore(tx)
		for _, p := range initialProjects {
			if _, err := catalog.CreateProject(p.Title, p.Description, p.Image, p.Tags); err != nil {
				return err
			}
		}

		news := NewNewsStore(tx)
		for _, p := range initialPosts {
			if _, err := news.CreatePost(p.Title, p.Content, p.Author, p.Image); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var serr *StorageError
		if errors.As(err, &serr) {
			return err
		}
		return &StorageError{Op: "seed", Err: err}
	}
	return nil
}

// Empty reports whether the catalog has no projects yet
func Empty(db *Database) (bool, error) {
	var count int64
	if err := db.DB.Model(&models.Project{}).Count(&count).Error; err != nil {
		return false, &StorageError{Op: "count projects", Err: err}
	}
	return count == 0, nil
}
