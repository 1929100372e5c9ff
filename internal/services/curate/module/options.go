package module

import (
	"runtime"

	"thaicurate/internal/platform/config"
	"thaicurate/internal/platform/validate"
)

// Options holds configuration settings for the curate module.
// Zero MinLength and MaxLength keep the bounds declared by the rule pack
type Options struct {
	Workers           int     `env:"WORKERS" validate:"min=1,max=1024"`
	Granularity       string  `env:"GRANULARITY" validate:"oneof=paragraph line"`
	BlockUnits        int     `env:"BLOCK_UNITS" validate:"min=1"`
	Canonicalize      bool    `env:"CANONICALIZE"`
	SpellcheckSalvage bool    `env:"SPELLCHECK_SALVAGE"`
	DictFile          string  `env:"DICT_FILE"`
	RulesFile         string  `env:"RULES_FILE"`
	MinThaiShare      float64 `env:"MIN_THAI_SHARE" validate:"gte=0,lte=1"`
	MinLength         int     `env:"MIN_LENGTH" validate:"gte=0"`
	MaxLength         int     `env:"MAX_LENGTH" validate:"omitempty,gtefield=MinLength"`
	DryRun            bool    `env:"DRY_RUN"`
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	cf := cfg.Prefix("CORE_CURATE_")
	return Options{
		Workers:           cf.MayInt("WORKERS", runtime.GOMAXPROCS(0)),
		Granularity:       cf.MayEnum("GRANULARITY", "paragraph", "paragraph", "line"),
		BlockUnits:        cf.MayInt("BLOCK_UNITS", 64),
		Canonicalize:      cf.MayBool("CANONICALIZE", false),
		SpellcheckSalvage: cf.MayBool("SPELLCHECK_SALVAGE", false),
		DictFile:          cf.MayString("DICT_FILE", ""),
		RulesFile:         cf.MayString("RULES_FILE", ""),
		MinThaiShare:      cf.MayFloat64("MIN_THAI_SHARE", 0),
		MinLength:         cf.MayInt("MIN_LENGTH", 0),
		MaxLength:         cf.MayInt("MAX_LENGTH", 0),
		DryRun:            cf.MayBool("DRY_RUN", false),
	}
}

// Validate checks the merged options
func (o Options) Validate() error { return validate.Struct(o) }

// merge applies non-zero overrides on top of o; bools override only when set
func (o Options) merge(ov Options) Options {
	if ov.Workers != 0 {
		o.Workers = ov.Workers
	}
	if ov.Granularity != "" {
		o.Granularity = ov.Granularity
	}
	if ov.BlockUnits != 0 {
		o.BlockUnits = ov.BlockUnits
	}
	if ov.DictFile != "" {
		o.DictFile = ov.DictFile
	}
	if ov.RulesFile != "" {
		o.RulesFile = ov.RulesFile
	}
	if ov.MinThaiShare != 0 {
		o.MinThaiShare = ov.MinThaiShare
	}
	if ov.MinLength != 0 {
		o.MinLength = ov.MinLength
	}
	if ov.MaxLength != 0 {
		o.MaxLength = ov.MaxLength
	}
	o.Canonicalize = o.Canonicalize || ov.Canonicalize
	o.SpellcheckSalvage = o.SpellcheckSalvage || ov.SpellcheckSalvage
	o.DryRun = o.DryRun || ov.DryRun
	return o
}
