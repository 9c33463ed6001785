// Package storage provides the MongoDB article store for PolyPulse.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/polypulse/engine/internal/models"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the articles collection. Construct with NewStore
// at run start and Close at run end; pass the handle into the pipeline rather
// than sharing global state.
type Store struct {
	client   *mongo.Client
	db       *mongo.Database
	articles *mongo.Collection
}

// NewStore creates a new storage connection.
func NewStore(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	log.Info().Str("db", dbName).Msg("Connected to MongoDB")

	store := &Store{
		client:   client,
		db:       db,
		articles: db.Collection("articles"),
	}

	if err := store.createIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to create some indexes")
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// createIndexes creates necessary indexes for efficient queries.
func (s *Store) createIndexes(ctx context.Context) error {
	articleIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "event_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "volume24hr", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	_, err := s.articles.Indexes().CreateMany(ctx, articleIndexes)
	return err
}

// ArticleExists reports whether an article has been written for the event id.
// This is a point-in-time check; InsertArticle is the authoritative guard.
func (s *Store) ArticleExists(ctx context.Context, eventID string) (bool, error) {
	err := s.articles.FindOne(ctx, bson.M{"event_id": eventID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// InsertArticle writes an article once under its event id. The conditional
// upsert is atomic, so two overlapping runs cannot both insert for the same
// id. Returns false when a record for the id already exists.
func (s *Store) InsertArticle(ctx context.Context, article *models.Article) (bool, error) {
	article.CreatedAt = time.Now()

	filter := bson.M{"event_id": article.EventID}
	update := bson.M{"$setOnInsert": article}
	opts := options.Update().SetUpsert(true)

	res, err := s.articles.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

// GetArticleByEventID returns an article by its event id.
func (s *Store) GetArticleByEventID(ctx context.Context, eventID string) (*models.Article, error) {
	var article models.Article
	err := s.articles.FindOne(ctx, bson.M{"event_id": eventID}).Decode(&article)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// ListArticles returns articles ordered by 24h volume descending, the order
// the display layer consumes them in.
func (s *Store) ListArticles(ctx context.Context, limit int) ([]models.Article, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "volume24hr", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.articles.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var articles []models.Article
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// Stats holds general statistics.
type Stats struct {
	TotalArticles int64 `json:"total_articles"`
	TodayArticles int64 `json:"today_articles"`
}

// GetStats returns general statistics.
func (s *Store) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	var err error
	stats.TotalArticles, err = s.articles.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	stats.TodayArticles, err = s.articles.CountDocuments(ctx, bson.M{
		"created_at": bson.M{"$gte": today},
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}
