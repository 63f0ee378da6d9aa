package models

// Tag represents a project label. Names are globally unique; a tag row is
// created the first time any project uses the name and reused afterwards.
type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null;uniqueIndex:idx_tags_name"`
}

// ProjectTag links one project to one tag. The composite primary key gives
// the link set semantics: re-linking the same pair is a no-op.
type ProjectTag struct {
	ProjectID uint `json:"project_id" gorm:"primaryKey"`
	TagID     uint `json:"tag_id" gorm:"primaryKey"`

	// Foreign Key Relations
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Tag     *Tag     `json:"tag,omitempty" gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (ProjectTag) TableName() string {
	return "project_tags"
}
