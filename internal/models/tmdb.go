package models

// TMDBDetails es lo que devuelve el proveedor externo para una película.
// Si TMDB falla o no encuentra nada, el caller trabaja con ausencia (nil),
// nunca aborta la recomendación.
type TMDBDetails struct {
	PosterURL   string  `json:"posterUrl,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Overview    string  `json:"overview,omitempty"`
	ReleaseDate string  `json:"releaseDate,omitempty"`
	Popularity  float64 `json:"popularity,omitempty"`
}
