package models

// SimilarityRowDoc es una fila de la matriz N×N tal como está en Mongo:
// un documento por película, con la fila completa de scores en orden iIdx.
type SimilarityRowDoc struct {
	IIdx    int       `json:"iIdx" bson:"iIdx"`
	MovieID int       `json:"movieId" bson:"movieId"`
	Metric  string    `json:"metric" bson:"metric"`
	Row     []float64 `json:"row" bson:"row"`
}
