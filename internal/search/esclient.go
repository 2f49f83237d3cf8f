// Package search maintains a full-text inventory index in elasticsearch.
// The search endpoint degrades to a SQL scan when no cluster is
// configured, so the whole package is optional at runtime.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/visionx-optics/visionx-server/internal/models"
)

type Client struct {
	es    *elasticsearch.Client
	index string
}

type Config struct {
	URL      string
	Username string
	Password string
	Index    string
}

func NewClient(cfg Config) (*Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("es client: %w", err)
	}

	res, err := es.Info()
	if err != nil {
		return nil, fmt.Errorf("es info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("es info: %s: %s", res.Status(), body)
	}

	return &Client{es: es, index: cfg.Index}, nil
}

func (c *Client) IndexItem(ctx context.Context, item models.InventoryItem) error {
	if c == nil {
		return nil
	}

	doc, err := json.Marshal(item)
	if err != nil {
		return err
	}

	res, err := c.es.Index(
		c.index,
		bytes.NewReader(doc),
		c.es.Index.WithContext(ctx),
		c.es.Index.WithDocumentID(strconv.FormatUint(uint64(item.ID), 10)),
	)
	if err != nil {
		return fmt.Errorf("es index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("es index: %s", res.Status())
	}
	return nil
}

func (c *Client) DeleteItem(ctx context.Context, id uint) error {
	if c == nil {
		return nil
	}

	res, err := c.es.Delete(
		c.index,
		strconv.FormatUint(uint64(id), 10),
		c.es.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("es delete: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("es delete: %s", res.Status())
	}
	return nil
}

func (c *Client) Search(ctx context.Context, q string, size int) ([]models.InventoryItem, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     q,
				"fields":    []string{"brand^2", "model^2", "type", "details"},
				"fuzziness": "AUTO",
			},
		},
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("es search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.InventoryItem `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, err
	}

	items := make([]models.InventoryItem, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		items[i] = hit.Source
	}
	return items, nil
}
