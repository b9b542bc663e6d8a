package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-gallery/pkg/config"
	"portfolio-gallery/pkg/models"
)

func newTestService(baseURL string) *Service {
	return &Service{
		config:     &config.Config{BaseURL: baseURL},
		docCache:   cache.New(5*time.Minute, 10*time.Minute),
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestFetchItemsDecodesDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/data/graphics.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[
			{"filename":"a.png","client":"Nord","columns":2},
			{"logo":"nord.svg"}
		]}`))
	}))
	defer server.Close()

	items, err := newTestService(server.URL).FetchItems(context.Background(), models.KindGraphics)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a.png", items[0].Filename)
	assert.Equal(t, "Nord", items[0].Client)
	assert.Equal(t, 2, items[0].Columns)
	assert.Equal(t, "nord.svg", items[1].Logo)
}

func TestFetchItemsPreservesDocumentOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"number":"c"},{"number":"a"},{"number":"b"}]}`))
	}))
	defer server.Close()

	items, err := newTestService(server.URL).FetchItems(context.Background(), models.KindExperiments)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "c", items[0].Number)
	assert.Equal(t, "a", items[1].Number)
	assert.Equal(t, "b", items[2].Number)
}

func TestFetchItemsCachesPerSection(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"items":[{"filename":"a.png"}]}`))
	}))
	defer server.Close()

	service := newTestService(server.URL)
	for i := 0; i < 3; i++ {
		_, err := service.FetchItems(context.Background(), models.KindGraphics)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	_, err := service.FetchItems(context.Background(), models.KindExperiments)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestFetchItemsStatusError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := newTestService(server.URL).FetchItems(context.Background(), models.KindGraphics)
	assert.ErrorContains(t, err, "status 404")
}

func TestFetchItemsDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": not json`))
	}))
	defer server.Close()

	_, err := newTestService(server.URL).FetchItems(context.Background(), models.KindGraphics)
	assert.ErrorContains(t, err, "failed to decode")
}

func TestGetFeedSectionsFailIndependently(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/data/graphics.json" {
			http.Error(w, "gone", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"items":[{"filename":"G-001.png"}]}`))
	}))
	defer server.Close()

	feed, err := newTestService(server.URL).GetFeed(context.Background())
	require.NoError(t, err)
	assert.Empty(t, feed.Graphics)
	require.Len(t, feed.Experiments, 1)
	assert.Equal(t, "G-001.png", feed.Experiments[0].Filename)
}

func TestListDocumentsRequiresBucket(t *testing.T) {
	_, err := newTestService("http://example.test").ListDocuments(context.Background())
	assert.ErrorContains(t, err, "no bucket configured")
}
