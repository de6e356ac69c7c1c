package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/shiprate-service/internal/domain/model"
)

// GlobalSettingsID is the _id of the single settings document.
const GlobalSettingsID = "global"

// SettingsDocument is the stored administrator configuration.
type SettingsDocument struct {
	ID        string         `bson:"_id" json:"id"`
	Settings  model.Settings `bson:"settings" json:"settings"`
	Version   int            `bson:"version" json:"version"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updated_at"`
	UpdatedBy string         `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// SettingsRepository stores the settings document in MongoDB.
type SettingsRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *MongoDB) *SettingsRepository {
	return &SettingsRepository{
		collection: db.Settings,
		now:        time.Now,
	}
}

// Get returns the settings document, or nil when none has been saved yet.
func (r *SettingsRepository) Get(ctx context.Context) (*SettingsDocument, error) {
	var doc SettingsDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": GlobalSettingsID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Save replaces the settings and bumps the version, creating the document if needed.
func (r *SettingsRepository) Save(ctx context.Context, settings model.Settings, updatedBy string) (*SettingsDocument, error) {
	now := r.now()
	update := bson.M{
		"$set": bson.M{
			"settings":   settings,
			"updated_at": now,
			"updated_by": updatedBy,
		},
		"$inc":         bson.M{"version": 1},
		"$setOnInsert": bson.M{"created_at": now},
	}

	var doc SettingsDocument
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": GlobalSettingsID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// SeedIfMissing stores settings only when no document exists yet. It reports
// whether a document was created.
func (r *SettingsRepository) SeedIfMissing(ctx context.Context, settings model.Settings) (bool, error) {
	now := r.now()
	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": GlobalSettingsID},
		bson.M{"$setOnInsert": bson.M{
			"settings":   settings,
			"version":    1,
			"created_at": now,
			"updated_at": now,
			"updated_by": "seed",
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}
