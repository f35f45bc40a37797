package handler

import (
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
)

// API groups the resource handlers mounted under /api.
type API struct {
	Users          *UserHandler
	Teams          *TeamHandler
	Datasets       *DatasetHandler
	Visualizations *VisualizationHandler
	Comments       *CommentHandler
	AuditLogs      *AuthzAuditLogHandler
}

// Routes registers the API on r. Authentication is applied by the caller;
// every route here expects the identity to be resolved already.
func (a *API) Routes(r chi.Router) {
	r.Get("/me", a.Users.Me)
	r.Get("/users/search", a.Users.Search)

	r.Group(func(r chi.Router) {
		r.Use(chmw.AllowContentType("application/json"))

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", a.Teams.List)
			r.Post("/", a.Teams.Create)
			r.Get("/{teamID}", a.Teams.Get)
			r.Delete("/{teamID}", a.Teams.Disband)
			r.Post("/{teamID}/members", a.Teams.AddMembers)
			r.Delete("/{teamID}/members/{userID}", a.Teams.RemoveMember)
		})

		r.Route("/datasets", func(r chi.Router) {
			r.Get("/", a.Datasets.List)
			r.Post("/", a.Datasets.Create)
			r.Get("/{id}", a.Datasets.Get)
			r.Put("/{id}", a.Datasets.Update)
			r.Delete("/{id}", a.Datasets.Delete)
			r.Get("/{id}/file", a.Datasets.File)
			r.Get("/{id}/visualizations", a.Datasets.Visualizations)
		})

		r.Route("/visualizations", func(r chi.Router) {
			r.Get("/", a.Visualizations.List)
			r.Post("/", a.Visualizations.Create)
			r.Get("/{id}", a.Visualizations.Get)
			r.Put("/{id}", a.Visualizations.Update)
			r.Delete("/{id}", a.Visualizations.Delete)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/", a.Comments.List)
			r.Post("/", a.Comments.Create)
			r.Delete("/{commentID}", a.Comments.Delete)
		})

		r.Route("/audit-logs", func(r chi.Router) {
			r.Get("/", a.AuditLogs.GetAuditLogs)
			r.Get("/{id}", a.AuditLogs.GetAuditLogByID)
		})
	})
}
