// Package search backs the artwork query path with Elasticsearch when a
// cluster is configured. The handlers fall back to the in-memory catalog
// filter when no Service is wired.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/artvault/gallery/internal/models"
)

func NewClient(url, user, password string) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
		Username:  user,
		Password:  password,
	})
	if err != nil {
		return nil, fmt.Errorf("search: create client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("search: cluster info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("search: cluster error: %s: %s", res.Status(), body)
	}

	return client, nil
}

type Service struct {
	ES    *elasticsearch.Client
	Index string
}

// IndexArtworks loads the static catalog into the index, one document per
// artwork keyed by id, so the gallery is searchable right after startup.
func (s *Service) IndexArtworks(ctx context.Context, artworks []models.Artwork) error {
	for _, a := range artworks {
		data, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("search: marshal artwork %d: %w", a.ID, err)
		}
		res, err := s.ES.Index(
			s.Index,
			bytes.NewReader(data),
			s.ES.Index.WithContext(ctx),
			s.ES.Index.WithDocumentID(strconv.FormatInt(a.ID, 10)),
		)
		if err != nil {
			return fmt.Errorf("search: index artwork %d: %w", a.ID, err)
		}
		res.Body.Close()
		if res.IsError() {
			return fmt.Errorf("search: index artwork %d: %s", a.ID, res.Status())
		}
	}
	return nil
}

func (s *Service) Search(ctx context.Context, query string, from, size int) (int64, []models.Artwork, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"title^2", "artist", "style", "description"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search: encode query: %w", err)
	}

	res, err := s.ES.Search(
		s.ES.Search.WithContext(ctx),
		s.ES.Search.WithIndex(s.Index),
		s.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: execute: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search: execute: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Artwork `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	artworks := make([]models.Artwork, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		artworks[i] = hit.Source
	}
	return r.Hits.Total.Value, artworks, nil
}
