package phonetic

import (
	"fmt"
	"log/slog"
	"strings"

	fierrors "github.com/dietsurvey/foodindex/internal/errors"
)

// Encoder produces phonetic variants for a single token.
type Encoder interface {
	Encode(input string) []string
}

// EncoderFunc adapts a plain function to Encoder.
type EncoderFunc func(input string) []string

// Encode implements Encoder.
func (f EncoderFunc) Encode(input string) []string {
	return ensureMinimal(input, f(input))
}

// Identity returns only the lower-cased input.
var Identity Encoder = EncoderFunc(func(input string) []string {
	return []string{strings.ToLower(input)}
})

// variantSet is an insertion-ordered set of lower-cased strings.
type variantSet struct {
	items []string
	seen  map[string]struct{}
}

func newVariantSet(capacity int) *variantSet {
	return &variantSet{
		items: make([]string, 0, capacity),
		seen:  make(map[string]struct{}, capacity),
	}
}

// add lower-cases v; empty strings are dropped unless the set is
// still empty, so encoding "" yields [""].
func (s *variantSet) add(v string) {
	v = strings.ToLower(v)
	if v == "" && len(s.items) > 0 {
		return
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *variantSet) addAll(vs []string) {
	for _, v := range vs {
		s.add(v)
	}
}

func (s *variantSet) has(v string) bool {
	_, ok := s.seen[strings.ToLower(v)]
	return ok
}

func (s *variantSet) len() int { return len(s.items) }

// snapshot copies the current items, so a stage can iterate while adding.
func (s *variantSet) snapshot() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// stage is one variant-generation pass. It may fail; the caller skips it.
type stage func(input string, set *variantSet) error

// runStage executes st, converting a panic into an error.
func runStage(name string, st stage, input string, set *variantSet) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fierrors.StageFailed(name, fmt.Errorf("panic: %v", r))
		}
	}()
	if err := st(input, set); err != nil {
		return fierrors.StageFailed(name, err)
	}
	return nil
}

// pipeline runs named stages in order, logging and skipping failures.
type pipeline struct {
	names  []string
	stages []stage
	logger *slog.Logger
}

func (p *pipeline) then(name string, st stage) *pipeline {
	p.names = append(p.names, name)
	p.stages = append(p.stages, st)
	return p
}

func (p *pipeline) run(input string, set *variantSet) {
	for i, st := range p.stages {
		if err := runStage(p.names[i], st, input, set); err != nil {
			p.logger.Debug("encoder_stage_skipped",
				slog.String("stage", p.names[i]),
				slog.String("input", input),
				slog.String("error", err.Error()))
		}
	}
}

// ensureMinimal guarantees the encoder contract on an arbitrary result.
func ensureMinimal(input string, variants []string) []string {
	set := newVariantSet(len(variants) + 1)
	set.add(input)
	set.addAll(variants)
	return set.items
}
