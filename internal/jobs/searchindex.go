package jobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/blevesearch/bleve/v2"
)

// SearchIndex is the supplemental full-text search operation: a per-project
// Bleve index over extracted/converted project files, letting a client
// search file contents instead of only listing/reading them by name. It is
// purely additive -- no registry operation depends on it being present.
type SearchIndex struct {
	basePath string
	mu       sync.RWMutex
	indexes  map[string]bleve.Index
}

// NewSearchIndex creates a SearchIndex rooted at basePath. Pass an empty
// basePath to get a SearchIndex whose methods are no-ops, so callers never
// need to branch on whether Bleve is configured.
func NewSearchIndex(basePath string) *SearchIndex {
	if basePath == "" {
		return nil
	}
	return &SearchIndex{basePath: basePath, indexes: make(map[string]bleve.Index)}
}

func (s *SearchIndex) getOrCreate(projectName string) (bleve.Index, error) {
	s.mu.RLock()
	if idx, ok := s.indexes[projectName]; ok {
		s.mu.RUnlock()
		return idx, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if idx, ok := s.indexes[projectName]; ok {
		return idx, nil
	}

	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("searchindex: create base path: %w", err)
	}

	path := filepath.Join(s.basePath, projectName)
	idx, err := bleve.Open(path)
	if err != nil {
		idx, err = bleve.New(path, bleve.NewIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("searchindex: create index for %s: %w", projectName, err)
		}
	}
	s.indexes[projectName] = idx
	return idx, nil
}

type fileDoc struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// IndexFile indexes a single project file's contents. Failures are silently
// ignored, not returned or logged, to keep indexing purely best-effort.
func (s *SearchIndex) IndexFile(ctx context.Context, projectName, fileName, content string) {
	if s == nil {
		return
	}
	idx, err := s.getOrCreate(projectName)
	if err != nil {
		return
	}
	_ = idx.Index(fileName, fileDoc{Path: fileName, Content: content})
}

// Search runs a full-text query over a project's indexed files and returns
// the matching file names.
func (s *SearchIndex) Search(ctx context.Context, projectName, query string) ([]string, error) {
	if s == nil {
		return nil, nil
	}
	idx, err := s.getOrCreate(projectName)
	if err != nil {
		return nil, err
	}

	q := bleve.NewMatchQuery(query)
	req := bleve.NewSearchRequest(q)
	result, err := idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("searchindex: search %s: %w", projectName, err)
	}

	names := make([]string, 0, len(result.Hits))
	for _, hit := range result.Hits {
		names = append(names, hit.ID)
	}
	return names, nil
}
