// Package module implements the curate module
package module

import (
	"thaicurate/internal/core/lexicon"
	"thaicurate/internal/core/rulepack"
	"thaicurate/internal/core/salvage"
	"thaicurate/internal/core/segment"
	"thaicurate/internal/core/transform"
	"thaicurate/internal/core/validator"
	"thaicurate/internal/modkit"
	perr "thaicurate/internal/platform/errors"
	"thaicurate/internal/services/curate/domain"
	"thaicurate/internal/services/curate/service"
)

// Ports exposed by the curate module
type Ports struct {
	Runner domain.RunnerPort
	Job    domain.JobPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	opts  Options
	pack  *rulepack.Pack
	ports Ports
}

// New constructs the curate module. File ports come in through
// modkit.WithPorts(domain.Ports); env config under CORE_CURATE_ is merged with
// overrides, where non-zero override fields win
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) (*Module, error) {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("curate"),
	}, opts...)...)

	// Basic guardrails against incorrect wiring
	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("curate module: expected WithPorts(curate/domain.Ports)")
	}
	if ports.Reader == nil || ports.Writer == nil {
		panic("curate module: Ports missing Reader or Writer")
	}

	cfg := FromConfig(deps.Cfg).merge(overrides)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pack, err := loadPack(cfg)
	if err != nil {
		return nil, err
	}
	lx := lexicon.Default()
	if cfg.DictFile != "" {
		if lx, err = lexicon.LoadFile(cfg.DictFile); err != nil {
			return nil, err
		}
	}

	val := validator.New(pack)
	var salvOpts []salvage.Option
	if cfg.SpellcheckSalvage {
		salvOpts = append(salvOpts, salvage.WithSpellChecker(lx))
	}

	runner := service.New(
		transform.New(lx),
		val,
		salvage.New(val, salvOpts...),
		service.Config{
			Workers:      cfg.Workers,
			Granularity:  segment.Granularity(cfg.Granularity),
			BlockUnits:   cfg.BlockUnits,
			Canonicalize: cfg.Canonicalize,
			MinThaiShare: cfg.MinThaiShare,
		},
	)
	job := &service.Job{
		Runner: runner,
		Reader: ports.Reader,
		Writer: ports.Writer,
		DryRun: cfg.DryRun,
	}

	log := deps.Named(b.Name)
	log.Debug().
		Int("workers", cfg.Workers).
		Str("granularity", cfg.Granularity).
		Int("rules", len(pack.Rules)).
		Int("lexicon", lx.Len()).
		Msg("curate module ready")

	return &Module{
		deps:  deps,
		opts:  cfg,
		pack:  pack,
		ports: Ports{Runner: runner, Job: job},
	}, nil
}

// loadPack returns the embedded or file pack with length overrides applied
func loadPack(cfg Options) (*rulepack.Pack, error) {
	var (
		p   *rulepack.Pack
		err error
	)
	if cfg.RulesFile != "" {
		p, err = rulepack.LoadFile(cfg.RulesFile)
	} else {
		p, err = rulepack.Load()
	}
	if err != nil {
		return nil, err
	}
	if cfg.MinLength > 0 {
		p.MinLength = cfg.MinLength
	}
	if cfg.MaxLength > 0 {
		p.MaxLength = cfg.MaxLength
	}
	if p.MaxLength < p.MinLength {
		return nil, perr.WithField(perr.Validationf("MAX_LENGTH %d is below MIN_LENGTH %d", p.MaxLength, p.MinLength), "MAX_LENGTH")
	}
	return p, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "curate" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Options returns the merged options the module was built with
func (m *Module) Options() Options { return m.opts }

// Pack returns the compiled rule pack in use
func (m *Module) Pack() *rulepack.Pack { return m.pack }
