package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"catalog-go/internal/model"
	"catalog-go/pkg/logger"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

// VideoIndex 视频搜索文档的读写
type VideoIndex struct {
	client *elasticsearch.Client
	index  string
}

func NewVideoIndex(client *elasticsearch.Client, index string) *VideoIndex {
	return &VideoIndex{client: client, index: index}
}

// Upsert 写入单个视频文档
func (x *VideoIndex) Upsert(ctx context.Context, doc *model.VideoDocument) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := x.client.Index(
		x.index,
		bytes.NewReader(body),
		x.client.Index.WithContext(ctx),
		x.client.Index.WithDocumentID(doc.ID),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Video synced to ES", zap.String("video_id", doc.ID))
	return nil
}

// Delete 删除视频文档；文档不存在不算错误
func (x *VideoIndex) Delete(ctx context.Context, videoID string) error {
	resp, err := x.client.Delete(x.index, videoID, x.client.Delete.WithContext(ctx))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}

// BulkUpsert 批量写入
func (x *VideoIndex) BulkUpsert(ctx context.Context, docs []*model.VideoDocument) (success, failed int, err error) {
	if len(docs) == 0 {
		return 0, 0, nil
	}

	var buf bytes.Buffer
	for _, doc := range docs {
		meta, _ := json.Marshal(map[string]map[string]string{"index": {"_index": x.index, "_id": doc.ID}})
		body, err := json.Marshal(doc)
		if err != nil {
			return 0, len(docs), err
		}
		buf.Write(meta)
		buf.WriteByte('\n')
		buf.Write(body)
		buf.WriteByte('\n')
	}

	resp, err := x.client.Bulk(&buf, x.client.Bulk.WithContext(ctx))
	if err != nil {
		return 0, len(docs), err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return 0, len(docs), fmt.Errorf("bulk failed: %s", resp.String())
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
		Items  []struct {
			Index struct {
				Status int `json:"status"`
			} `json:"index"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&bulkResp); err != nil {
		return 0, len(docs), fmt.Errorf("decode bulk response: %w", err)
	}

	for _, item := range bulkResp.Items {
		if item.Index.Status >= 200 && item.Index.Status < 300 {
			success++
		} else {
			failed++
		}
	}

	logger.Info("Bulk sync to ES completed", zap.Int("success", success), zap.Int("failed", failed))
	return success, failed, nil
}

func searchBody(query string, from, size int) map[string]any {
	body := map[string]any{
		"from":             from,
		"size":             size,
		"_source":          false,
		"track_total_hits": true,
	}
	if query == "" {
		body["query"] = map[string]any{"match_all": map[string]any{}}
		body["sort"] = []any{
			map[string]any{"created_at": map[string]any{"order": "desc"}},
			map[string]any{"id": map[string]any{"order": "asc"}},
		}
		return body
	}
	body["query"] = map[string]any{
		"multi_match": map[string]any{
			"query":  query,
			"fields": []string{"title^3", "description"},
			"type":   "best_fields",
		},
	}
	body["highlight"] = map[string]any{
		"pre_tags":  []string{"<em>"},
		"post_tags": []string{"</em>"},
		"fields": map[string]any{
			"title":       map[string]any{},
			"description": map[string]any{"fragment_size": 150, "number_of_fragments": 1},
		},
	}
	return body
}

// Search 全文检索视频，返回按相关度排序的 id
func (x *VideoIndex) Search(ctx context.Context, query string, from, size int) (*model.VideoSearchHits, error) {
	body, err := json.Marshal(searchBody(query, from, size))
	if err != nil {
		return nil, err
	}

	resp, err := x.client.Search(
		x.client.Search.WithContext(ctx),
		x.client.Search.WithIndex(x.index),
		x.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("search failed: %s", resp.String())
	}

	var result struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID        string              `json:"_id"`
				Highlight map[string][]string `json:"highlight"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	hits := &model.VideoSearchHits{
		Total:      result.Hits.Total.Value,
		IDs:        make([]string, 0, len(result.Hits.Hits)),
		Highlights: make(map[string]map[string][]string),
	}
	for _, h := range result.Hits.Hits {
		hits.IDs = append(hits.IDs, h.ID)
		if len(h.Highlight) > 0 {
			hits.Highlights[h.ID] = h.Highlight
		}
	}
	return hits, nil
}
