// File: database/repository/provider/interface.go
package providerRepo

import (
	"context"

	"github.com/Instaresz90008/demo-app-sub000/database"
	"github.com/Instaresz90008/demo-app-sub000/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProviderRepository persists accounts created by the onboarding flow.
type ProviderRepository interface {
	Create(ctx context.Context, p *models.Provider) error
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	GetByEmail(ctx context.Context, email string) (*models.Provider, error)
	Update(ctx context.Context, p *models.Provider) error
	Delete(ctx context.Context, id string) error
}

type mongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a MongoDB-backed ProviderRepository.
func NewMongoProviderRepo() ProviderRepository {
	return &mongoProviderRepo{
		coll: database.DB().Collection("providers"),
	}
}
