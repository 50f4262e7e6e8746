package language

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	fierrors "github.com/dietsurvey/foodindex/internal/errors"
	"github.com/dietsurvey/foodindex/internal/logging"
	"github.com/dietsurvey/foodindex/internal/tokenize"
)

// constructors builds each supported language.
var constructors = map[string]func(Options) Backend{
	"en":    func(Options) Backend { return NewEnglish() },
	"fr":    func(Options) Backend { return NewFrench() },
	"ja":    func(o Options) Backend { return NewJapanese(o) },
	"zh":    func(o Options) Backend { return NewChinese(o) },
	"ta":    func(Options) Backend { return NewTamil() },
	"ar-AE": func(Options) Backend { return NewArabic() },
}

// SupportedCodes returns every code Build knows, sorted.
func SupportedCodes() []string {
	codes := make([]string, 0, len(constructors))
	for c := range constructors {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Registry maps language codes to backends. It is read-only after
// construction and safe for concurrent use.
type Registry struct {
	backends map[string]Backend
	codes    []string
	logger   *slog.Logger
}

// NewRegistry holds the given backends. Codes must be unique.
func NewRegistry(logger *slog.Logger, backends ...Backend) (*Registry, error) {
	r := &Registry{
		backends: make(map[string]Backend, len(backends)),
		logger:   logging.OrDefault(logger),
	}
	for _, b := range backends {
		if _, dup := r.backends[b.Code()]; dup {
			return nil, fierrors.ValidationError(fmt.Sprintf("duplicate language backend %q", b.Code()), nil)
		}
		r.backends[b.Code()] = b
		r.codes = append(r.codes, b.Code())
	}
	sort.Strings(r.codes)
	return r, nil
}

// Build constructs the backends named in opts.Enabled, or all of them.
func Build(opts Options) (*Registry, error) {
	codes := opts.Enabled
	if len(codes) == 0 {
		codes = SupportedCodes()
	}

	backends := make([]Backend, 0, len(codes))
	for _, code := range codes {
		ctor, ok := constructors[code]
		if !ok {
			return nil, fierrors.UnknownLanguage(code)
		}
		backends = append(backends, ctor(opts))
	}
	return NewRegistry(opts.logger(), backends...)
}

// Get returns the backend for code, or ERR_402_UNKNOWN_LANGUAGE.
func (r *Registry) Get(code string) (Backend, error) {
	b, ok := r.backends[code]
	if !ok {
		return nil, fierrors.UnknownLanguage(code)
	}
	return b, nil
}

// Lookup returns the backend for code.
func (r *Registry) Lookup(code string) (Backend, bool) {
	b, ok := r.backends[code]
	return b, ok
}

// Codes returns the registered codes, sorted.
func (r *Registry) Codes() []string {
	return append([]string(nil), r.codes...)
}

// Ready reports whether code's backend is at full quality: true for
// backends without a tokenizer, and for the others once it has loaded.
func (r *Registry) Ready(code string) bool {
	b, ok := r.backends[code]
	if !ok {
		return false
	}
	tb, ok := b.(TokenizerBackend)
	if !ok {
		return true
	}
	return tb.Tokenizer().Ready()
}

// Warmup loads every enabled tokenizer concurrently and waits for them or
// for ctx. Backends keep working on the fallback while this runs and after
// it fails.
func (r *Registry) Warmup(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, code := range r.codes {
		tb, ok := r.backends[code].(TokenizerBackend)
		if !ok {
			continue
		}
		lazy := tb.Tokenizer()
		if disabled(lazy) {
			continue
		}
		g.Go(func() error {
			if _, err := lazy.Init(ctx); err != nil {
				return err
			}
			r.logger.Debug("backend_warm", slog.String("language", code), slog.String("tokenizer", lazy.Name()))
			return nil
		})
	}
	return g.Wait()
}

func disabled(l *tokenize.Lazy) bool {
	return l.State() == tokenize.Failed &&
		fierrors.GetCode(l.Err()) == fierrors.ErrCodeDependencyUnavailable
}
