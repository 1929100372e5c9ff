// Package service implements the curate dispatcher: partition, parallel
// transform and validate, then a single merge
package service

import (
	"context"
	"runtime"
	"strings"
	"time"
	"unicode/utf8"

	"thaicurate/internal/core/corpus"
	"thaicurate/internal/core/langhint"
	"thaicurate/internal/core/normalize"
	"thaicurate/internal/core/salvage"
	"thaicurate/internal/core/segment"
	"thaicurate/internal/core/transform"
	"thaicurate/internal/core/validator"
	perr "thaicurate/internal/platform/errors"
	"thaicurate/internal/platform/logger"
	"thaicurate/internal/services/curate/domain"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Config for the curate service
type Config struct {
	Workers      int
	Granularity  segment.Granularity
	BlockUnits   int
	Canonicalize bool
	MinThaiShare float64 // 0 disables the script filter
}

// Service implements domain.RunnerPort. Every collaborator is immutable, so
// one Service can serve concurrent runs
type Service struct {
	Pipe  *transform.Pipeline
	Val   *validator.Validator
	Salv  *salvage.Salvager
	Canon *normalize.Canonicalizer
	Cfg   Config
}

// New constructs a curate service, filling zero config values with defaults
func New(pipe *transform.Pipeline, val *validator.Validator, salv *salvage.Salvager, cfg Config) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.BlockUnits <= 0 {
		cfg.BlockUnits = 64
	}
	if cfg.Granularity != segment.Line {
		cfg.Granularity = segment.Paragraph
	}
	return &Service{
		Pipe:  pipe,
		Val:   val,
		Salv:  salv,
		Canon: normalize.New(),
		Cfg:   cfg,
	}
}

// block is an exclusive slice of the corpus owned by one worker
type block struct {
	idx   int
	units []string
}

type blockResult struct {
	set   *corpus.Set
	stats domain.Stats
}

// Run curates text. The only error is MalformedInput for text that is not
// valid UTF-8; rejected sentences are counted, never returned
func (s *Service) Run(ctx context.Context, text string) (domain.Report, error) {
	started := time.Now()
	if !utf8.ValidString(text) {
		return domain.Report{}, perr.MalformedInputf("corpus is not valid UTF-8")
	}

	runID := uuid.NewString()
	ctx = logger.WithRun(ctx, runID)
	log := logger.C(ctx)

	blocks := partition(segment.Units(text, s.Cfg.Granularity), s.Cfg.BlockUnits)
	log.Debug().Int("blocks", len(blocks)).Int("workers", s.Cfg.Workers).
		Str("granularity", string(s.Cfg.Granularity)).Msg("curate start")

	// map: each worker writes only its own slot
	results := make([]blockResult, len(blocks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Cfg.Workers)
	for i := range blocks {
		b := blocks[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := s.processBlock(logger.WithBlock(gctx, b.idx), b)
			if err != nil {
				return err
			}
			results[b.idx] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Report{}, err
	}

	// reduce: single goroutine, after the barrier
	acc := corpus.New()
	var stats domain.Stats
	for _, r := range results {
		acc.Merge(r.set)
		stats.Merge(r.stats)
	}

	rep := domain.Report{RunID: runID, Corpus: acc, Stats: stats, Duration: time.Since(started)}
	log.Info().
		Int("blocks", stats.Blocks).
		Int("skipped_blocks", stats.SkippedBlocks).
		Int("candidates", stats.Candidates).
		Int("accepted", stats.Accepted).
		Int("salvaged_words", stats.SalvagedWords).
		Int("distinct", acc.Len()).
		Interface("rejections", stats.Rejections).
		Dur("took", rep.Duration).
		Msg("curate done")
	return rep, nil
}

func partition(units []string, per int) []block {
	out := make([]block, 0, (len(units)+per-1)/per)
	for start := 0; start < len(units); start += per {
		end := min(start+per, len(units))
		out = append(out, block{idx: len(out), units: units[start:end]})
	}
	return out
}

func (s *Service) processBlock(ctx context.Context, b block) (blockResult, error) {
	res := blockResult{set: corpus.New(), stats: domain.Stats{Blocks: 1}}
	st := &res.stats
	log := logger.C(ctx)

	if s.Cfg.MinThaiShare > 0 {
		if share := langhint.ThaiShare(strings.Join(b.units, "\n")); share < s.Cfg.MinThaiShare {
			st.SkippedBlocks++
			log.Debug().Float64("thai_share", share).Msg("block skipped")
			return res, nil
		}
	}

	for _, unit := range b.units {
		if !utf8.ValidString(unit) {
			return blockResult{}, perr.MalformedInputf("block %d is not valid UTF-8", b.idx)
		}
		for _, cand := range segment.Sentences(unit) {
			st.Candidates++
			text := s.Pipe.Apply(cand)

			v := s.Val.Validate(text, validator.Sentence)
			if v.Accepted {
				if s.admit(res.set, text, validator.Sentence, st) {
					st.Accepted++
				}
				continue
			}
			st.Reject(v.Label())
			log.Trace().Err(v.Err()).Str("text", text).Msg("sentence rejected")

			st.SalvageAttempts++
			out := s.Salv.Salvage(text)
			switch out.Status {
			case salvage.Recovered:
				for _, w := range out.Words {
					if s.admit(res.set, w, validator.Word, st) {
						st.SalvagedWords++
					}
				}
			case salvage.NoSurvivors:
				st.NoSurvivors++
			case salvage.MalformedSplit:
				st.MalformedSplits++
			}
		}
	}
	return res, nil
}

// admit inserts text, canonicalized first when configured. A canonical form
// that no longer validates is dropped so nothing unvalidated reaches the set
func (s *Service) admit(set *corpus.Set, text string, scope validator.Scope, st *domain.Stats) bool {
	if s.Cfg.Canonicalize {
		if c := s.Canon.Canonicalize(text); c != text {
			if !s.Val.Accepts(c, scope) {
				st.Recanonicalized++
				return false
			}
			text = c
		}
	}
	set.Add(text)
	return true
}
