// File: database/repository/timeslot/interface.go
package timeslotRepo

import (
	"context"

	"github.com/Instaresz90008/demo-app-sub000/database"
	"github.com/Instaresz90008/demo-app-sub000/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TimeSlotRepository persists the concrete slots produced for a provider.
type TimeSlotRepository interface {
	CreateMany(ctx context.Context, slots []models.TimeSlot) ([]string, error)
	GetByProviderID(ctx context.Context, providerID string) ([]models.TimeSlot, error)
	GetByProviderIDAndDate(ctx context.Context, providerID, date string) ([]models.TimeSlot, error)
	DeleteByID(ctx context.Context, providerID, slotID string) error
	DeleteByProviderID(ctx context.Context, providerID string) error
}

type mongoTimeSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoTimeSlotRepo constructs a MongoDB-backed TimeSlotRepository.
func NewMongoTimeSlotRepo() TimeSlotRepository {
	return &mongoTimeSlotRepo{
		coll: database.DB().Collection("timeslots"),
	}
}
