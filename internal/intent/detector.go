package intent

import (
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dietsurvey/foodindex/internal/logging"
)

// DefaultCacheSize bounds the detected-intent cache.
const DefaultCacheSize = 10000

// Detector classifies queries. Results are memoised per trimmed query and
// every caller receives its own copy.
type Detector struct {
	cache  *lru.Cache[string, SearchIntent]
	logger *slog.Logger
}

// Option configures a Detector.
type Option func(*Detector)

// WithCacheSize sets the LRU size. Zero or negative disables caching.
func WithCacheSize(n int) Option {
	return func(d *Detector) {
		if n <= 0 {
			d.cache = nil
			return
		}
		d.cache, _ = lru.New[string, SearchIntent](n)
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Detector) {
		d.logger = l
	}
}

// NewDetector returns a Detector with the built-in patterns.
func NewDetector(opts ...Option) *Detector {
	cache, _ := lru.New[string, SearchIntent](DefaultCacheSize)
	d := &Detector{cache: cache}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = logging.OrDefault(d.logger)
	return d
}

// DetectIntent returns the highest-confidence intent for query. A later
// detector only replaces the current best with strictly higher confidence.
// Queries matching nothing yield the general intent at 0.5.
func (d *Detector) DetectIntent(query string) SearchIntent {
	key := strings.TrimSpace(query)
	if d.cache != nil {
		if cached, ok := d.cache.Get(key); ok {
			return cached.clone()
		}
	}

	best := d.detect(key)
	if d.cache != nil {
		d.cache.Add(key, best.clone())
	}
	return best
}

func (d *Detector) detect(query string) SearchIntent {
	best := generalIntent()
	if query == "" {
		return best
	}

	for _, det := range detectors {
		if current, ok := det.evaluate(query); ok && current.Confidence > best.Confidence {
			best = current
		}
	}
	if best.Type == TypeGeneral {
		return best
	}

	best.Modifiers = extractModifiers(query)
	best.Negations = extractNegations(query)

	d.logger.Debug("intent_detected",
		slog.String("query", query),
		slog.String("type", string(best.Type)),
		slog.String("sub_type", best.SubType))
	return best
}

// DetectAll returns every matching intent in evaluation order, without the
// general fallback. Useful for explaining a classification.
func (d *Detector) DetectAll(query string) []SearchIntent {
	query = strings.TrimSpace(query)
	var out []SearchIntent
	for _, det := range detectors {
		if current, ok := det.evaluate(query); ok {
			out = append(out, current)
		}
	}
	return out
}
