package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RecItem struct {
	IIdx    int     `json:"iIdx" bson:"iIdx"`
	MovieID int     `json:"movieId" bson:"movieId"`
	Title   string  `json:"title" bson:"title"`
	Score   float64 `json:"score" bson:"score"`
}

// RecQuery es el historial de consultas de recomendación que guardamos en
// Mongo. Si el insert falla no rompemos la respuesta, solo se loguea.
type RecQuery struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Query        string             `json:"query" bson:"query"`
	Found        bool               `json:"found" bson:"found"`
	MatchedTitle string             `json:"matchedTitle,omitempty" bson:"matchedTitle,omitempty"`
	MatchedIIdx  int                `json:"matchedIIdx" bson:"matchedIIdx"`
	K            int                `json:"k" bson:"k"`
	Suggestions  []string           `json:"suggestions,omitempty" bson:"suggestions,omitempty"`
	Items        []RecItem          `json:"items,omitempty" bson:"items,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}
