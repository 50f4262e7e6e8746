package analysis

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search"

	"github.com/dietsurvey/foodindex/internal/language"
)

// Index is an in-memory bleve index of food names analysed by one backend.
type Index struct {
	mu     sync.RWMutex
	index  bleve.Index
	code   string
	closed bool
}

// Document is the indexed document.
type Document struct {
	Name string `json:"name"`
}

// Hit is one search result.
type Hit struct {
	ID           string   `json:"id"`
	Score        float64  `json:"score"`
	MatchedTerms []string `json:"matched_terms,omitempty"`
}

// NewMemIndex returns an empty in-memory index for b.
func NewMemIndex(b language.Backend) (*Index, error) {
	m, err := IndexMapping(b)
	if err != nil {
		return nil, err
	}
	idx, err := bleve.NewMemOnly(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}
	return &Index{index: idx, code: b.Code()}, nil
}

// Add indexes names keyed by id.
func (x *Index) Add(ctx context.Context, docs map[string]string) error {
	if len(docs) == 0 {
		return nil
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	if x.closed {
		return fmt.Errorf("index is closed")
	}

	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	batch := x.index.NewBatch()
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := batch.Index(id, Document{Name: docs[id]}); err != nil {
			return fmt.Errorf("failed to index document %s: %w", id, err)
		}
	}
	if err := x.index.Batch(batch); err != nil {
		return fmt.Errorf("failed to execute batch: %w", err)
	}
	return nil
}

// Search analyses query with the same backend and returns the best hits.
func (x *Index) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if x.closed {
		return nil, fmt.Errorf("index is closed")
	}
	if strings.TrimSpace(query) == "" || limit <= 0 {
		return []Hit{}, nil
	}

	q := bleve.NewMatchQuery(query)
	q.SetField(NameField)
	q.Analyzer = AnalyzerName(x.code)

	req := bleve.NewSearchRequest(q)
	req.Size = limit
	req.IncludeLocations = true

	res, err := x.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hits = append(hits, Hit{ID: h.ID, Score: h.Score, MatchedTerms: matchedTerms(h)})
	}
	return hits, nil
}

// Count returns the number of indexed documents.
func (x *Index) Count() (uint64, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if x.closed {
		return 0, fmt.Errorf("index is closed")
	}
	return x.index.DocCount()
}

// Close releases the index.
func (x *Index) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.closed {
		return nil
	}
	x.closed = true
	return x.index.Close()
}

func matchedTerms(hit *search.DocumentMatch) []string {
	var terms []string
	for term := range hit.Locations[NameField] {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
