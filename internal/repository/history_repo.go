package repository

import (
	"context"
	"time"

	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HistoryRepository guarda cada consulta de recomendación servida.
type HistoryRepository struct {
	col *mongo.Collection
}

func NewHistoryRepository(db *mongo.Database) *HistoryRepository {
	return &HistoryRepository{col: db.Collection("rec_queries")}
}

func (r *HistoryRepository) Insert(ctx context.Context, q *models.RecQuery) error {
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, q)
	return err
}

// FindRecent devuelve las últimas consultas, más recientes primero.
func (r *HistoryRepository) FindRecent(ctx context.Context, limit int64) ([]models.RecQuery, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RecQuery
	for cur.Next(ctx) {
		var q models.RecQuery
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, cur.Err()
}
