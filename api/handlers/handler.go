package handlers

import (
	"github.com/nekoniyah/velvetdream-website-2-0/pkg/config"
	"github.com/nekoniyah/velvetdream-website-2-0/pkg/repository"
)

// Handler carries the stores the route handlers work against. One Handler
// is built at startup and shared across requests.
type Handler struct {
	cfg      *config.Config
	catalog  *repository.CatalogStore
	news     *repository.NewsStore
	comments *repository.CommentStore
	contact  *repository.ContactStore
	users    *repository.UserStore
}

// New wires a Handler onto an open database
func New(cfg *config.Config, db *repository.Database) *Handler {
	return &Handler{
		cfg:      cfg,
		catalog:  repository.NewCatalogStore(db.DB),
		news:     repository.NewNewsStore(db.DB),
		comments: repository.NewCommentStore(db.DB),
		contact:  repository.NewContactStore(db.DB),
		users:    repository.NewUserStore(db.DB),
	}
}
