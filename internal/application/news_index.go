package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/dilvertex/pipesite-backend/internal/domain/entity"
)

// NewsIndexer mirrors news articles into Elasticsearch for the public
// search endpoint. Indexing is best-effort: the database stays the system
// of record and a failed index never fails the request.
type NewsIndexer struct {
	ES     *elasticsearch.Client
	Index  string
	Logger *logrus.Logger
}

func NewNewsIndexer(es *elasticsearch.Client, index string, logger *logrus.Logger) *NewsIndexer {
	return &NewsIndexer{ES: es, Index: index, Logger: logger}
}

func (x *NewsIndexer) enabled() bool {
	return x != nil && x.ES != nil && x.Index != ""
}

// IndexNews upserts one article document.
func (x *NewsIndexer) IndexNews(ctx context.Context, n *entity.News) error {
	if !x.enabled() {
		return nil
	}
	doc := map[string]any{
		"id":               n.ID,
		"title":            n.Title,
		"status":           n.Status,
		"date":             n.Date,
		"shortDescription": n.ShortDescription,
		"longDescription":  n.LongDescription,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: x.Index, DocumentID: n.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, x.ES)
	if err != nil {
		if x.Logger != nil {
			x.Logger.WithError(err).WithField("news_id", n.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && x.Logger != nil {
		x.Logger.WithField("status", res.Status()).WithField("news_id", n.ID).Warn("es index response error")
	}
	return nil
}

// DeleteNews removes an article from the index.
func (x *NewsIndexer) DeleteNews(ctx context.Context, id string) error {
	if !x.enabled() {
		return nil
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	req := esapi.DeleteRequest{Index: x.Index, DocumentID: id}
	res, err := req.Do(c, x.ES)
	if err != nil {
		return err
	}
	_ = res.Body.Close()
	return nil
}

// Search runs a multi_match over title and descriptions.
func (x *NewsIndexer) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if !x.enabled() {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "shortDescription", "longDescription"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := x.ES.Search(
		x.ES.Search.WithContext(c),
		x.ES.Search.WithIndex(x.Index),
		x.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
