package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"quickcart_back_end/internal/database"
	"quickcart_back_end/internal/models"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const productIndex = "products"

//
// --- INDEXING ---
//

// IndexProduct pushes a catalog document into Elasticsearch. Indexing is
// best-effort: the catalog write already succeeded, search just lags behind.
func IndexProduct(p models.Product) {
	if database.Elastic == nil {
		return
	}

	data, _ := json.Marshal(p)
	req := esapi.IndexRequest{
		Index:      productIndex,
		DocumentID: p.ID.Hex(),
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Elastic index request failed:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic returned an error for %s: %s", p.Name, res.String())
	} else {
		log.Printf("✅ Product indexed in Elasticsearch: %s", p.Name)
	}
}

// RemoveProductFromIndex drops a soft-deleted product from search results.
func RemoveProductFromIndex(productID string) {
	if database.Elastic == nil {
		return
	}

	req := esapi.DeleteRequest{Index: productIndex, DocumentID: productID}
	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Elastic delete request failed:", err)
		return
	}
	res.Body.Close()
}

//
// --- SEARCH ---
//

// SearchProducts queries name, description and category.
func SearchProducts(query string) ([]models.Product, error) {
	if database.Elastic == nil {
		return nil, errors.New("search unavailable")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name", "description", "category"},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("query encode error: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{productIndex},
		Body:  &buf,
	}
	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		return nil, fmt.Errorf("elastic request error: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.New("index missing or empty")
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("response decode error: %v", err)
	}

	results := make([]models.Product, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		if !hit.Source.Deleted {
			results = append(results, hit.Source)
		}
	}
	return results, nil
}
