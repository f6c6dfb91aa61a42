package elasticsearch

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-go/internal/model"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T, handler http.HandlerFunc) *VideoIndex {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewVideoIndex(client, "videos")
}

func TestVideoIndexSearch(t *testing.T) {
	var body map[string]any
	x := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos/_search", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"hits":{"total":{"value":42},"hits":[
			{"_id":"b","highlight":{"title":["<em>Space</em> B"]}},
			{"_id":"a"}
		]}}`)
	})

	hits, err := x.Search(context.Background(), "space", 10, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, hits.IDs)
	assert.Equal(t, int64(42), hits.Total)
	assert.Equal(t, []string{"<em>Space</em> B"}, hits.Highlights["b"]["title"])
	assert.NotContains(t, hits.Highlights, "a")

	assert.EqualValues(t, 10, body["from"])
	assert.EqualValues(t, 5, body["size"])
	assert.Contains(t, body["query"], "multi_match")
}

func TestSearchBodyWithoutQuery(t *testing.T) {
	body := searchBody("", 0, 15)
	assert.Contains(t, body["query"], "match_all")
	assert.NotContains(t, body, "highlight")
	assert.Len(t, body["sort"], 2)
}

func TestVideoIndexBulkUpsert(t *testing.T) {
	var lines []string
	x := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/_bulk", r.URL.Path)
		sc := bufio.NewScanner(r.Body)
		for sc.Scan() {
			lines = append(lines, sc.Text())
		}
		_, _ = io.WriteString(w, `{"errors":true,"items":[{"index":{"status":201}},{"index":{"status":400}}]}`)
	})

	ok, bad, err := x.BulkUpsert(context.Background(), []*model.VideoDocument{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}})
	require.NoError(t, err)
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, bad)
	require.Len(t, lines, 4)
	assert.Equal(t, `{"index":{"_id":"a","_index":"videos"}}`, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `{"id":"a"`))
}

func TestVideoIndexDeleteIgnoresMissing(t *testing.T) {
	x := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"result":"not_found"}`)
	})
	assert.NoError(t, x.Delete(context.Background(), "missing"))
}

func TestNormalizeHosts(t *testing.T) {
	assert.Equal(t, []string{"http://es:9200", "https://x"}, normalizeHosts([]string{" es:9200 ", "", "https://x"}))
}
