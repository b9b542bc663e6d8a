package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"github.com/patrickmn/go-cache"
	"google.golang.org/api/iterator"

	"portfolio-gallery/pkg/config"
	"portfolio-gallery/pkg/models"
)

// Service fetches and caches the gallery section documents
type Service struct {
	config     *config.Config
	docCache   *cache.Cache
	httpClient *http.Client
	mu         sync.RWMutex
}

var (
	// defaultService is the singleton instance of Service
	defaultService *Service
	once           sync.Once
)

// InitService initializes the service with the given configuration
func InitService(cfg *config.Config) {
	once.Do(func() {
		defaultService = &Service{
			config:     cfg,
			docCache:   cache.New(5*time.Minute, 10*time.Minute),
			httpClient: &http.Client{Timeout: 30 * time.Second},
		}
	})
}

// Default returns the singleton service
func Default() *Service {
	return defaultService
}

// FetchItems returns the item list for a section, in document order
func FetchItems(ctx context.Context, kind models.SectionKind) ([]models.Item, error) {
	return defaultService.FetchItems(ctx, kind)
}

// GetFeed returns both section item lists
func GetFeed(ctx context.Context) (models.Feed, error) {
	return defaultService.GetFeed(ctx)
}

// ListDocuments lists the JSON documents available in the storage bucket
func ListDocuments(ctx context.Context) ([]string, error) {
	return defaultService.ListDocuments(ctx)
}

// FetchItems returns the item list for a section. Results are cached; the
// returned slice preserves the document's array order and is never reordered.
func (s *Service) FetchItems(ctx context.Context, kind models.SectionKind) ([]models.Item, error) {
	cacheKey := string(kind)

	s.mu.RLock()
	if cached, found := s.docCache.Get(cacheKey); found {
		s.mu.RUnlock()
		log.Printf("Using cached items for %s", kind)
		return cached.([]models.Item), nil
	}
	s.mu.RUnlock()

	var (
		doc models.Document
		err error
	)
	if s.config.BucketName != "" {
		doc, err = s.fetchFromBucket(ctx, kind)
	} else {
		doc, err = s.fetchFromURL(ctx, kind)
	}
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.docCache.Set(cacheKey, doc.Items, cache.DefaultExpiration)
	s.mu.Unlock()

	return doc.Items, nil
}

// fetchFromURL fetches a section document over HTTP from the base URL
func (s *Service) fetchFromURL(ctx context.Context, kind models.SectionKind) (models.Document, error) {
	url := s.config.BaseURL + kind.DocumentPath()
	log.Printf("Fetching %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to build request for %s: %v", url, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Document{}, fmt.Errorf("fetch of %s returned status %d", url, resp.StatusCode)
	}

	var doc models.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return models.Document{}, fmt.Errorf("failed to decode %s: %v", url, err)
	}
	return doc, nil
}

// fetchFromBucket reads a section document from the Cloud Storage bucket
func (s *Service) fetchFromBucket(ctx context.Context, kind models.SectionKind) (models.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to create storage client: %v", err)
	}
	defer storageClient.Close()

	objectName := strings.TrimPrefix(kind.DocumentPath(), "/")
	log.Printf("Reading %s from bucket %s", objectName, s.config.BucketName)

	reader, err := storageClient.Bucket(s.config.BucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to open %s: %v", objectName, err)
	}
	defer reader.Close()

	var doc models.Document
	if err := json.NewDecoder(reader).Decode(&doc); err != nil {
		return models.Document{}, fmt.Errorf("failed to decode %s: %v", objectName, err)
	}
	return doc, nil
}

// GetFeed fetches both sections. A section that fails to fetch is returned
// empty; sections fail independently.
func (s *Service) GetFeed(ctx context.Context) (models.Feed, error) {
	var feed models.Feed

	graphics, err := s.FetchItems(ctx, models.KindGraphics)
	if err != nil {
		log.Printf("Error fetching graphics items: %v", err)
	} else {
		feed.Graphics = graphics
	}

	experiments, err := s.FetchItems(ctx, models.KindExperiments)
	if err != nil {
		log.Printf("Error fetching experiment items: %v", err)
	} else {
		feed.Experiments = experiments
	}

	return feed, nil
}

// ListDocuments lists JSON documents under data/ in the storage bucket
func (s *Service) ListDocuments(ctx context.Context) ([]string, error) {
	if s.config.BucketName == "" {
		return nil, fmt.Errorf("no bucket configured")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}
	defer storageClient.Close()

	it := storageClient.Bucket(s.config.BucketName).Objects(ctx, &storage.Query{Prefix: "data/"})
	var names []string
	for {
		object, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			log.Printf("Error iterating objects: %v", err)
			continue
		}
		if strings.HasSuffix(object.Name, ".json") {
			names = append(names, object.Name)
		}
	}
	return names, nil
}
