// File: database/repository/service/interface.go
package serviceRepo

import (
	"context"

	"github.com/Instaresz90008/demo-app-sub000/database"
	"github.com/Instaresz90008/demo-app-sub000/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository persists bookable services. Operations preserve whatever
// fields they are given; failures surface as rejected operations with a
// human-readable message.
type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Service, error)
	Update(ctx context.Context, id string, updates map[string]any) (*models.Service, error)
	Replace(ctx context.Context, svc *models.Service) error
	Delete(ctx context.Context, id string) error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a MongoDB-backed ServiceRepository.
func NewMongoServiceRepo() ServiceRepository {
	return &mongoServiceRepo{
		coll: database.DB().Collection("services"),
	}
}
