// File: database/repository/template/interface.go
package templateRepo

import (
	"context"

	"github.com/Instaresz90008/demo-app-sub000/database"
	"github.com/Instaresz90008/demo-app-sub000/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TemplateRepository serves the read-mostly template catalog.
type TemplateRepository interface {
	List(ctx context.Context, filter models.TemplateFilter) ([]models.Template, error)
	GetByID(ctx context.Context, id string) (*models.Template, error)
	Seed(ctx context.Context, templates []models.Template) error
}

type mongoTemplateRepo struct {
	coll *mongo.Collection
}

// NewMongoTemplateRepo constructs a MongoDB-backed TemplateRepository.
func NewMongoTemplateRepo() TemplateRepository {
	return &mongoTemplateRepo{
		coll: database.DB().Collection("templates"),
	}
}
