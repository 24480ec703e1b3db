// File: database/repository/timeslot/crud.go
package timeslotRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Instaresz90008/demo-app-sub000/models"
)

func (r *mongoTimeSlotRepo) CreateMany(ctx context.Context, slots []models.TimeSlot) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(slots))
	ids := make([]string, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		docs[i] = slot
		ids[i] = slot.ID
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return nil, fmt.Errorf("failed to create timeslots: %w", err)
	}
	return ids, nil
}

func (r *mongoTimeSlotRepo) GetByProviderID(ctx context.Context, providerID string) ([]models.TimeSlot, error) {
	return r.find(ctx, bson.M{"providerId": providerID})
}

func (r *mongoTimeSlotRepo) GetByProviderIDAndDate(ctx context.Context, providerID, date string) ([]models.TimeSlot, error) {
	return r.find(ctx, bson.M{"providerId": providerID, "date": date})
}

func (r *mongoTimeSlotRepo) find(ctx context.Context, filter bson.M) ([]models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timeslots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.TimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode timeslots: %w", err)
	}
	return slots, nil
}

func (r *mongoTimeSlotRepo) DeleteByID(ctx context.Context, providerID, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": slotID, "providerId": providerID})
	if err != nil {
		return fmt.Errorf("failed to delete timeslot %s: %w", slotID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteByProviderID removes every slot a provider owns. Zero matches is not
// an error; callers use it to discard partially written batches.
func (r *mongoTimeSlotRepo) DeleteByProviderID(ctx context.Context, providerID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"providerId": providerID}); err != nil {
		return fmt.Errorf("failed to delete timeslots for provider %s: %w", providerID, err)
	}
	return nil
}
