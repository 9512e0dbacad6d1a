package models

// DatasetSummary resumen de estado del dataset cargado, para /admin.
type DatasetSummary struct {
	TotalMovies           int    `json:"totalMovies"`
	MatrixSize            int    `json:"matrixSize"`
	DuplicateTitles       int    `json:"duplicateTitles"`
	MoviesWithoutGenres   int    `json:"moviesWithoutGenres"`
	MoviesWithoutDirector int    `json:"moviesWithoutDirector"`
	MoviesWithRatingStats int    `json:"moviesWithRatingStats"`
	Metric                string `json:"metric,omitempty"`
}
