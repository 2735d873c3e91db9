// Package elastic keeps an optional Elasticsearch index of products for free-text search.
package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"

	"hyperlocal/internal/core/domain/model/catalog"
	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/ports"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/pkg/errors"
)

// NewClient connects and checks the cluster answers.
func NewClient(addresses []string, username, password string) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: addresses,
		Username:  username,
		Password:  password,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create elasticsearch client")
	}

	res, err := client.Info()
	if err != nil {
		return nil, errors.Wrap(err, "elasticsearch info")
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, errors.Errorf("elasticsearch info: %s: %s", res.Status(), body)
	}
	return client, nil
}

type ProductIndex struct {
	client *elasticsearch.Client
	index  string
}

var _ ports.ProductSearchIndex = (*ProductIndex)(nil)

func NewProductIndex(client *elasticsearch.Client, index string) *ProductIndex {
	return &ProductIndex{client: client, index: index}
}

type productDocument struct {
	ID          string   `json:"id"`
	StoreID     string   `json:"store_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BaseType    string   `json:"base_type"`
	Variants    []string `json:"variants"`
}

// Index upserts the product document under its id.
func (x *ProductIndex) Index(ctx context.Context, p *catalog.Product) error {
	doc := productDocument{
		ID:          p.ID().String(),
		StoreID:     p.StoreID().String(),
		Name:        p.Name(),
		Description: p.Description(),
		BaseType:    p.BaseType(),
	}
	for _, v := range p.Variants() {
		doc.Variants = append(doc.Variants, v.Name())
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encode product document")
	}

	res, err := x.client.Index(
		x.index,
		bytes.NewReader(body),
		x.client.Index.WithContext(ctx),
		x.client.Index.WithDocumentID(doc.ID),
	)
	if err != nil {
		return errors.Wrapf(err, "index product %s", doc.ID)
	}
	defer res.Body.Close()
	if res.IsError() {
		return errors.Errorf("index product %s: %s", doc.ID, res.Status())
	}
	return nil
}

// Search runs a fuzzy multi_match over name and description, name weighted double.
func (x *ProductIndex) Search(ctx context.Context, query string, limit int) ([]kernel.UUID, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     strings.TrimSpace(query),
				"fields":    []string{"name^2", "description", "variants"},
				"fuzziness": "AUTO",
			},
		},
		"size":    limit,
		"_source": false,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, errors.Wrap(err, "encode search")
	}

	res, err := x.client.Search(
		x.client.Search.WithContext(ctx),
		x.client.Search.WithIndex(x.index),
		x.client.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, errors.Wrap(err, "search products")
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, errors.Errorf("search products: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err = json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, errors.Wrap(err, "decode search response")
	}

	ids := make([]kernel.UUID, 0, len(r.Hits.Hits))
	for _, h := range r.Hits.Hits {
		id, err := kernel.UUIDFromString(h.ID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
