// internal/tmdb/client.go
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/BLVCK-MAMBA-6/CineMatch-AI-Content-Based-Movie-Recommender/internal/models"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	defaultImageURL = "https://image.tmdb.org/t/p/w500"

	// TMDB es fallible por red: nunca esperamos más de 5s por una película.
	requestTimeout = 5 * time.Second
)

// Client es el cliente mínimo de búsqueda de TMDB. Sin API key el cliente
// sigue siendo usable: todas las búsquedas devuelven ausencia.
type Client struct {
	apiKey  string
	baseURL string
	imgBase string
	httpc   *http.Client
}

func New(apiKey string) *Client {
	return NewWithBaseURL(apiKey, defaultBaseURL)
}

// NewWithBaseURL para tests contra un servidor local.
func NewWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		imgBase: defaultImageURL,
		httpc:   &http.Client{Timeout: requestTimeout},
	}
}

type searchResponse struct {
	Results []struct {
		PosterPath  string  `json:"poster_path"`
		VoteAverage float64 `json:"vote_average"`
		Overview    string  `json:"overview"`
		ReleaseDate string  `json:"release_date"`
		Popularity  float64 `json:"popularity"`
	} `json:"results"`
}

// SearchMovie busca por título (y año si se conoce) y devuelve poster +
// detalles del primer resultado. (nil, nil) significa ausencia: sin API key,
// o TMDB no encontró nada.
func (c *Client) SearchMovie(ctx context.Context, title string, year *int) (*models.TMDBDetails, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("query", title)
	if year != nil {
		q.Set("year", strconv.Itoa(*year))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search/movie?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb: status %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, err
	}
	if len(sr.Results) == 0 {
		return nil, nil
	}

	first := sr.Results[0]
	det := &models.TMDBDetails{
		Rating:      first.VoteAverage,
		Overview:    first.Overview,
		ReleaseDate: first.ReleaseDate,
		Popularity:  first.Popularity,
	}
	if first.PosterPath != "" {
		det.PosterURL = c.imgBase + first.PosterPath
	}
	return det, nil
}
