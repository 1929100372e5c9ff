// Command thaicurate-rulecheck verifies a rule pack against its own examples and
// explains how a piece of text is transformed and judged
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"thaicurate/internal/core/lexicon"
	"thaicurate/internal/core/rulepack"
	"thaicurate/internal/core/transform"
	"thaicurate/internal/core/validator"
	perr "thaicurate/internal/platform/errors"
	"thaicurate/internal/platform/logger"
)

type cliArgs struct {
	rules   string
	dict    string
	check   string
	scope   string
	rewrite bool
}

func main() {
	var a cliArgs
	flag.StringVar(&a.rules, "rules", "", "rule pack file (default embedded pack)")
	flag.StringVar(&a.dict, "dict", "", "extra word list for the rewrite pipeline")
	flag.StringVar(&a.check, "check", "", "text to run through the pipeline and validator")
	flag.StringVar(&a.scope, "scope", "sentence", "validation scope: sentence or word")
	flag.BoolVar(&a.rewrite, "rewrite", true, "apply the rewrite pipeline before validating -check")
	flag.Parse()

	if err := run(os.Stdout, a); err != nil {
		logger.Get().Error().Err(err).Msg("rulecheck failed")
		os.Exit(perr.ExitCodeOf(err))
	}
}

func run(w io.Writer, a cliArgs) error {
	var (
		pack *rulepack.Pack
		err  error
	)
	if a.rules != "" {
		pack, err = rulepack.LoadFile(a.rules)
	} else {
		pack, err = rulepack.Load()
	}
	if err != nil {
		return err
	}
	if err := pack.VerifyExamples(); err != nil {
		return err
	}

	var scope validator.Scope
	switch a.scope {
	case "sentence":
		scope = validator.Sentence
	case "word":
		scope = validator.Word
	default:
		return perr.WithField(perr.InvalidArgf("unknown scope %q", a.scope), "scope")
	}

	if a.check == "" {
		fmt.Fprintf(w, "rule pack v%d: %d rules, length %d..%d, examples ok\n",
			pack.Version, len(pack.Rules), pack.MinLength, pack.MaxLength)
		for _, r := range pack.Rules {
			fmt.Fprintf(w, "  %-26s %-8s %s\n", r.ID, r.Scope, r.Label)
		}
		return nil
	}

	text := a.check
	if a.rewrite {
		lx := lexicon.Default()
		if a.dict != "" {
			if lx, err = lexicon.LoadFile(a.dict); err != nil {
				return err
			}
		}
		out, steps := transform.New(lx).Trace(text)
		prev := text
		for _, s := range steps {
			if s.Out != prev {
				fmt.Fprintf(w, "  %-22s %q\n", s.Stage, s.Out)
			}
			prev = s.Out
		}
		text = out
	}

	v := validator.New(pack)
	res := v.Validate(text, scope)
	if res.Accepted {
		fmt.Fprintf(w, "accept %q (%d runes)\n", text, res.Length)
		return nil
	}
	fmt.Fprintf(w, "reject %q: %s\n", text, res.Label())
	for _, r := range v.Check(text, scope) {
		m, _ := r.Find(text)
		fmt.Fprintf(w, "  %-26s %q\n", r.ID, m)
	}
	return nil
}
