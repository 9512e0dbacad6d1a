package models

// RatingStats agregados de ratings calculados upstream (congelados con el dataset).
type RatingStats struct {
	Average float64 `json:"average" bson:"average"`
	Count   int     `json:"count" bson:"count"`
}

// MovieDoc es una entrada del catálogo tal como viene del dataset precalculado.
// iIdx es un índice denso [0, N), estable durante la vida del proceso.
type MovieDoc struct {
	MovieID     int          `json:"movieId" bson:"movieId"`
	IIdx        int          `json:"iIdx" bson:"iIdx"`
	Title       string       `json:"title" bson:"title"`
	Year        *int         `json:"year,omitempty" bson:"year,omitempty"`
	Genres      []string     `json:"genres" bson:"genres"`
	Director    string       `json:"director,omitempty" bson:"director,omitempty"`
	Cast        []string     `json:"cast,omitempty" bson:"cast,omitempty"`
	Keywords    []string     `json:"keywords,omitempty" bson:"keywords,omitempty"`
	RatingStats *RatingStats `json:"ratingStats,omitempty" bson:"ratingStats,omitempty"`
}

// RecommendedMovie es una película recomendada ya resuelta contra el catálogo,
// lista para responder por API. Details solo se llena si se pidió enrichment.
type RecommendedMovie struct {
	Rank     int          `json:"rank"`
	IIdx     int          `json:"iIdx"`
	MovieID  int          `json:"movieId"`
	Title    string       `json:"title"`
	Year     *int         `json:"year,omitempty"`
	Genres   []string     `json:"genres"`
	Director string       `json:"director,omitempty"`
	Score    float64      `json:"score"`
	Details  *TMDBDetails `json:"details,omitempty"`
}
