package tokenize

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	fierrors "github.com/dietsurvey/foodindex/internal/errors"
	"github.com/dietsurvey/foodindex/internal/logging"
)

// State is the initialization state of a Lazy tokenizer.
type State int

const (
	Uninitialized State = iota
	Initializing
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Lazy loads a Tokenizer at most once. The first caller starts the load in
// the background; every concurrent caller waits on the same done channel.
// A failed load is final: there is no retry and no reload.
type Lazy struct {
	name   string
	load   LoadFunc
	logger *slog.Logger

	mu    sync.Mutex
	state State
	done  chan struct{}
	tok   Tokenizer
	err   error
}

// NewLazy returns a Lazy that builds its tokenizer with load.
func NewLazy(name string, load LoadFunc, logger *slog.Logger) *Lazy {
	return &Lazy{
		name:   name,
		load:   load,
		logger: logging.OrDefault(logger),
		done:   make(chan struct{}),
	}
}

// Disabled returns a Lazy that never loads; every call uses the fallback.
func Disabled(name string) *Lazy {
	l := NewLazy(name, nil, logging.Discard())
	l.state = Failed
	l.err = fierrors.DependencyError(fmt.Sprintf("%s tokenizer disabled", name), nil)
	close(l.done)
	return l
}

// Name returns the tokenizer name used in logs.
func (l *Lazy) Name() string { return l.name }

// start begins loading if nobody has yet and returns the done channel.
func (l *Lazy) start() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != Uninitialized {
		return l.done
	}
	l.state = Initializing
	go l.run()
	return l.done
}

func (l *Lazy) run() {
	tok, err := l.safeLoad()

	if err == nil && tok == nil {
		err = fmt.Errorf("loader returned no tokenizer")
	}
	var failure error
	if err != nil {
		failure = fierrors.New(fierrors.ErrCodeTokenizerFailed,
			fmt.Sprintf("%s tokenizer failed to initialize", l.name), err).
			WithDetail("tokenizer", l.name)
	}

	l.mu.Lock()
	if failure != nil {
		l.state = Failed
		l.err = failure
	} else {
		l.state = Ready
		l.tok = tok
	}
	l.mu.Unlock()
	close(l.done)

	if failure != nil {
		l.logger.Warn("tokenizer_init_failed", fierrors.LogAttrs(failure)...)
		return
	}
	l.logger.Info("tokenizer_ready", slog.String("tokenizer", l.name))
}

func (l *Lazy) safeLoad() (tok Tokenizer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	// The load is shared by every waiter, so no single caller's context
	// may cancel it.
	return l.load(context.Background())
}

// Init starts the load if needed and waits for it or for ctx.
func (l *Lazy) Init(ctx context.Context) (Tokenizer, error) {
	select {
	case <-l.start():
	case <-ctx.Done():
		return nil, fierrors.New(fierrors.ErrCodeTokenizerNotReady,
			fmt.Sprintf("%s tokenizer still initializing", l.name), ctx.Err())
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tok, l.err
}

// Tokenizer returns the loaded tokenizer without blocking. The first call
// triggers the background load.
func (l *Lazy) Tokenizer() (Tokenizer, bool) {
	l.start()

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tok, l.state == Ready
}

// Ready reports whether the tokenizer has loaded. It does not start a load.
func (l *Lazy) Ready() bool {
	return l.State() == Ready
}

// State returns the current state.
func (l *Lazy) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Err returns the load error once the load has failed.
func (l *Lazy) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Tokenize uses the loaded tokenizer, or returns ERR_302 while it is not
// ready yet and the load error once it has failed.
func (l *Lazy) Tokenize(text string) ([]Token, error) {
	tok, ok := l.Tokenizer()
	if !ok {
		if err := l.Err(); err != nil {
			return nil, err
		}
		return nil, fierrors.New(fierrors.ErrCodeTokenizerNotReady,
			fmt.Sprintf("%s tokenizer still initializing", l.name), nil)
	}
	return safeTokenize(tok, text)
}

// TokensOrFallback tokenizes text with the loaded tokenizer. When it is not
// ready, or it fails on this input, the Fallback split is returned instead
// and the second result is false.
func (l *Lazy) TokensOrFallback(text string) ([]Token, bool) {
	tokens, err := l.Tokenize(text)
	if err == nil {
		return tokens, true
	}
	l.logger.Debug("tokenizer_fallback",
		slog.String("tokenizer", l.name),
		slog.String("code", fierrors.GetCode(err)))
	return Fallback(text), false
}

func safeTokenize(tok Tokenizer, text string) (tokens []Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fierrors.New(fierrors.ErrCodeTokenizerFailed, "tokenizer panicked", fmt.Errorf("%v", r))
		}
	}()
	return tok.Tokenize(text)
}
