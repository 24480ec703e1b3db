// File: database/repository/template/catalog.go
package templateRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Instaresz90008/demo-app-sub000/models"
)

func (r *mongoTemplateRepo) List(ctx context.Context, filter models.TemplateFilter) ([]models.Template, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer cursor.Close(ctx)

	var templates []models.Template
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, fmt.Errorf("failed to decode templates: %w", err)
	}
	return templates, nil
}

func (r *mongoTemplateRepo) GetByID(ctx context.Context, id string) (*models.Template, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var tpl models.Template
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tpl); err != nil {
		return nil, fmt.Errorf("template not found: %w", err)
	}
	return &tpl, nil
}

// Seed upserts the built-in catalog entries so a fresh install has templates
// to offer. Existing entries with the same id are overwritten.
func (r *mongoTemplateRepo) Seed(ctx context.Context, templates []models.Template) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	upsert := true
	for _, tpl := range templates {
		opts := &options.ReplaceOptions{Upsert: &upsert}
		if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": tpl.ID}, tpl, opts); err != nil {
			return fmt.Errorf("failed to seed template %s: %w", tpl.ID, err)
		}
	}
	return nil
}

// DefaultCatalog is the seed set offered before any custom templates exist.
func DefaultCatalog() []models.Template {
	return []models.Template{
		{ID: "tpl-consulting-intro", Name: "Intro Consultation", Category: "consulting", Description: "A 30 minute introductory call for new clients.", DefaultDuration: 30, DefaultPrice: 50, DefaultCapacity: 1},
		{ID: "tpl-therapy-session", Name: "Therapy Session", Category: "therapy", Description: "A standard 50 minute individual session.", DefaultDuration: 50, DefaultPrice: 90, DefaultCapacity: 1},
		{ID: "tpl-fitness-group", Name: "Group Fitness Class", Category: "fitness", Description: "A high energy group class for all levels.", DefaultDuration: 60, DefaultPrice: 20, DefaultCapacity: 12},
		{ID: "tpl-tutoring-hour", Name: "Tutoring Hour", Category: "education", Description: "One-on-one tutoring in your subject of choice.", DefaultDuration: 60, DefaultPrice: 40, DefaultCapacity: 1},
	}
}
