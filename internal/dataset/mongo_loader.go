// internal/dataset/mongo_loader.go
package dataset

import (
	"context"
	"log"

	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/catalog"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/models"
	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/similarity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LoadFromMongo lee las colecciones `movies` y `similarities` (formato del
// ETL de MovieLens: un documento por película, fila completa por documento)
// y construye los dos stores en memoria. Se llama una sola vez al arrancar.
func LoadFromMongo(ctx context.Context, db *mongo.Database) (*catalog.Store, *similarity.Matrix, error) {
	movies, err := loadMovies(ctx, db)
	if err != nil {
		return nil, nil, err
	}

	rows, metric, err := loadSimilarityRows(ctx, db, len(movies))
	if err != nil {
		return nil, nil, err
	}

	store, matrix, err := Build(movies, rows, metric)
	if err != nil {
		return nil, nil, err
	}

	log.Printf("[dataset] cargado: %d películas, matriz %dx%d (%s)",
		store.Size(), matrix.Size(), matrix.Size(), metric)
	return store, matrix, nil
}

func loadMovies(ctx context.Context, db *mongo.Database) ([]models.MovieDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "iIdx", Value: 1}})
	cur, err := db.Collection("movies").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, &LoadError{Msg: "leyendo movies", Err: err}
	}
	defer cur.Close(ctx)

	var out []models.MovieDoc
	for cur.Next(ctx) {
		var m models.MovieDoc
		if err := cur.Decode(&m); err != nil {
			return nil, &LoadError{Msg: "decodificando movie", Err: err}
		}
		out = append(out, m)
	}
	if err := cur.Err(); err != nil {
		return nil, &LoadError{Msg: "cursor de movies", Err: err}
	}
	return out, nil
}

func loadSimilarityRows(ctx context.Context, db *mongo.Database, n int) ([][]float64, string, error) {
	cur, err := db.Collection("similarities").Find(ctx, bson.M{})
	if err != nil {
		return nil, "", &LoadError{Msg: "leyendo similarities", Err: err}
	}
	defer cur.Close(ctx)

	var docs []models.SimilarityRowDoc
	for cur.Next(ctx) {
		var doc models.SimilarityRowDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, "", &LoadError{Msg: "decodificando fila de similitud", Err: err}
		}
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, "", &LoadError{Msg: "cursor de similarities", Err: err}
	}

	return assembleRows(docs, n)
}

// assembleRows coloca cada fila por su iIdx y valida la estructura del set
// completo: sin filas fuera de rango, sin duplicados, una fila por película
// y una única métrica declarada.
func assembleRows(docs []models.SimilarityRowDoc, n int) ([][]float64, string, error) {
	rows := make([][]float64, n)
	seen := make([]bool, n)
	metric := ""

	for _, doc := range docs {
		if doc.IIdx < 0 || doc.IIdx >= n {
			return nil, "", loadErrf("fila de similitud con iIdx=%d fuera de [0,%d)", doc.IIdx, n)
		}
		if seen[doc.IIdx] {
			return nil, "", loadErrf("fila de similitud duplicada para iIdx=%d", doc.IIdx)
		}
		seen[doc.IIdx] = true
		rows[doc.IIdx] = doc.Row

		switch {
		case metric == "":
			metric = doc.Metric
		case doc.Metric != "" && doc.Metric != metric:
			return nil, "", loadErrf("métrica inconsistente entre filas: %q y %q", metric, doc.Metric)
		}
	}

	if len(docs) != n {
		return nil, "", loadErrf("hay %d filas de similitud para %d películas", len(docs), n)
	}
	return rows, metric, nil
}
