package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// Indexer pushes catalog documents to an Elasticsearch index. A nil Indexer
// means search push is not configured and every call is a no-op.
type Indexer struct {
	client    *elasticsearch.Client
	index     string
	batchSize int
}

// NewIndexer builds an indexer for the given address. It returns nil when
// addr is empty, which disables search push for the run.
func NewIndexer(addr, apiKey, index string, batchSize int) (*Indexer, error) {
	if addr == "" {
		return nil, nil
	}
	if batchSize < 1 {
		batchSize = 1000
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{addr},
		APIKey:    apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create search client: %w", err)
	}

	return &Indexer{
		client:    client,
		index:     index,
		batchSize: batchSize,
	}, nil
}

// Clear removes every document from the index. A missing index is not an
// error; the first bulk push creates it.
func (ix *Indexer) Clear(ctx context.Context) error {
	if ix == nil {
		return nil
	}

	body := bytes.NewReader([]byte(`{"query":{"match_all":{}}}`))
	res, err := ix.client.DeleteByQuery(
		[]string{ix.index},
		body,
		ix.client.DeleteByQuery.WithContext(ctx),
		ix.client.DeleteByQuery.WithRefresh(true),
	)
	if err != nil {
		return fmt.Errorf("clear index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("clear index: %s", res.String())
	}
	return nil
}

// Push indexes documents in fixed-size bulk batches. A failed batch is
// logged and skipped so one bad batch does not lose the rest of the
// catalog.
func (ix *Indexer) Push(ctx context.Context, docs []Document) error {
	if ix == nil || len(docs) == 0 {
		return nil
	}

	for start := 0; start < len(docs); start += ix.batchSize {
		end := start + ix.batchSize
		if end > len(docs) {
			end = len(docs)
		}

		if err := ix.pushBatch(ctx, docs[start:end]); err != nil {
			slog.Warn("Search batch failed", "index", ix.index, "from", start, "to", end, "error", err)
		}
	}

	return nil
}

func (ix *Indexer) pushBatch(ctx context.Context, docs []Document) error {
	var buf bytes.Buffer

	for _, doc := range docs {
		action := map[string]any{
			"index": map[string]any{"_index": ix.index, "_id": doc.ID},
		}
		if err := json.NewEncoder(&buf).Encode(action); err != nil {
			return err
		}
		if err := json.NewEncoder(&buf).Encode(doc); err != nil {
			return err
		}
	}

	res, err := ix.client.Bulk(
		bytes.NewReader(buf.Bytes()),
		ix.client.Bulk.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	return checkBulkResponse(res)
}

func checkBulkResponse(res *esapi.Response) error {
	if res.IsError() {
		return fmt.Errorf("bulk request: %s", res.String())
	}

	var parsed struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			Status int `json:"status"`
			Error  struct {
				Reason string `json:"reason"`
			} `json:"error"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("parse bulk response: %w", err)
	}

	if !parsed.Errors {
		return nil
	}

	for _, item := range parsed.Items {
		for _, op := range item {
			if op.Status >= 300 {
				return fmt.Errorf("bulk item rejected: %s", op.Error.Reason)
			}
		}
	}
	return fmt.Errorf("bulk request reported errors")
}
