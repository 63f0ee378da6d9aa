package repository

import (
	"strings"

	"github.com/nekoniyah/velvetdream-website-2-0/pkg/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogStore owns projects, tags and their links. Tag names are unique
// across the catalog; a project's creation and all of its tag links commit
// or roll back as one unit.
type CatalogStore struct {
	db *gorm.DB
}

// NewCatalogStore creates a catalog store on an existing handle
func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// CreateProject inserts a project together with its tag links and returns
// the new project id. Tag rows are created lazily and reused by name;
// duplicate names in the input collapse to one link each. Nothing is
// written if any step fails.
func (s *CatalogStore) CreateProject(title, description, image string, tags []string) (uint, error) {
	if strings.TrimSpace(title) == "" {
		return 0, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	project := models.Project{
		Title:       title,
		Description: description,
		Image:       image,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		seen := make(map[string]struct{}, len(tags))
		for _, name := range tags {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}

			tag, err := ensureTag(tx, name)
			if err != nil {
				return err
			}

			link := models.ProjectTag{ProjectID: project.ID, TagID: tag.ID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, &StorageError{Op: "create project", Err: err}
	}

	return project.ID, nil
}

// ensureTag creates the tag row for name if it does not exist, otherwise
// resolves the existing row. Runs inside the caller's transaction.
func ensureTag(tx *gorm.DB, name string) (models.Tag, error) {
	tag := models.Tag{Name: name}
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&tag)
	if res.Error != nil {
		return models.Tag{}, res.Error
	}
	if res.RowsAffected == 0 || tag.ID == 0 {
		// Insert was ignored, the name already exists
		if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
			return models.Tag{}, err
		}
	}
	return tag, nil
}

// ListProjects returns every project in ascending id order. Each project
// carries its tag names ordered by tag id, which is the order the names
// first entered the catalog; projects without tags get an empty slice.
func (s *CatalogStore) ListProjects() ([]models.Project, error) {
	projects := []models.Project{}
	if err := s.db.Order("id ASC").Find(&projects).Error; err != nil {
		return nil, &StorageError{Op: "list projects", Err: err}
	}

	type projectTagName struct {
		ProjectID uint
		Name      string
	}
	var links []projectTagName
	err := s.db.Table("project_tags").
		Select("project_tags.project_id, tags.name").
		Joins("JOIN tags ON tags.id = project_tags.tag_id").
		Order("project_tags.project_id ASC, tags.id ASC").
		Scan(&links).Error
	if err != nil {
		return nil, &StorageError{Op: "list project tags", Err: err}
	}

	byProject := make(map[uint][]string, len(projects))
	for _, l := range links {
		byProject[l.ProjectID] = append(byProject[l.ProjectID], l.Name)
	}

	for i := range projects {
		if names, ok := byProject[projects[i].ID]; ok {
			projects[i].Tags = names
		} else {
			projects[i].Tags = []string{}
		}
	}

	return projects, nil
}

// DeleteProject removes a project; its link rows go with it via the
// foreign key cascade. Unused tag rows are kept.
func (s *CatalogStore) DeleteProject(id uint) error {
	res := s.db.Delete(&models.Project{}, id)
	if res.Error != nil {
		return &StorageError{Op: "delete project", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
