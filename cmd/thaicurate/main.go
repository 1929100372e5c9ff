// Command thaicurate curates a raw Thai corpus into a deduplicated set of
// well-formed sentences, one per line
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"thaicurate/internal/adapters/textfile"
	"thaicurate/internal/core/version"
	"thaicurate/internal/modkit"
	"thaicurate/internal/modkit/module"
	"thaicurate/internal/platform/config"
	perr "thaicurate/internal/platform/errors"
	"thaicurate/internal/platform/logger"

	curatedom "thaicurate/internal/services/curate/domain"
	curatemod "thaicurate/internal/services/curate/module"
)

func mustSetEnv(k, v string) {
	if v != "" {
		_ = os.Setenv(k, v)
	}
}

func boolEnv(b bool) string {
	if b {
		return "1"
	}
	return ""
}

func main() {
	var (
		in           = flag.String("in", "", "input corpus (.txt or .txt.gz)")
		out          = flag.String("out", "", "output file, one sentence per line")
		workers      = flag.Int("workers", 0, "parallel workers (default GOMAXPROCS)")
		granularity  = flag.String("granularity", "", "partition unit: paragraph or line")
		blockUnits   = flag.Int("block", 0, "units per block (default 64)")
		canonicalize = flag.Bool("canonicalize", false, "store the NFC form of accepted text")
		dict         = flag.String("dict", "", "extra word list for maiyamok and spelling")
		spellcheck   = flag.Bool("spellcheck-salvage", false, "require salvaged words to be in the word list")
		rules        = flag.String("rules", "", "rule pack file (default embedded pack)")
		minShare     = flag.Float64("min-thai-share", 0, "skip blocks with a lower share of Thai letters")
		dryRun       = flag.Bool("dry-run", false, "curate but do not write output")
		showVersion  = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info("thaicurate").String())
		return
	}

	// Pass CLI flags into CORE_CURATE_* so the module reads one config source
	if *workers > 0 {
		mustSetEnv("CORE_CURATE_WORKERS", strconv.Itoa(*workers))
	}
	if *blockUnits > 0 {
		mustSetEnv("CORE_CURATE_BLOCK_UNITS", strconv.Itoa(*blockUnits))
	}
	if *minShare > 0 {
		mustSetEnv("CORE_CURATE_MIN_THAI_SHARE", strconv.FormatFloat(*minShare, 'f', -1, 64))
	}
	mustSetEnv("CORE_CURATE_GRANULARITY", *granularity)
	mustSetEnv("CORE_CURATE_DICT_FILE", *dict)
	mustSetEnv("CORE_CURATE_RULES_FILE", *rules)
	mustSetEnv("CORE_CURATE_CANONICALIZE", boolEnv(*canonicalize))
	mustSetEnv("CORE_CURATE_SPELLCHECK_SALVAGE", boolEnv(*spellcheck))
	mustSetEnv("CORE_CURATE_DRY_RUN", boolEnv(*dryRun))

	os.Exit(run(*in, *out))
}

func run(in, out string) int {
	l := logger.Get()
	deps := modkit.Deps{Cfg: config.New(), Log: *l}

	files := textfile.New()
	cm, err := curatemod.New(deps, curatemod.Options{},
		modkit.WithPorts(curatedom.Ports{Reader: files, Writer: files}),
	)
	if err != nil {
		l.Error().Err(err).Msg("curate setup failed")
		return perr.ExitCodeOf(err)
	}
	module.Register(cm.Name(), cm.Ports())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ports := module.MustPortsOf[curatemod.Ports](cm)
	rep, err := ports.Job.RunFile(ctx, in, out)
	if err != nil {
		l.Error().Err(err).Str("in", in).Msg("curate failed")
		return perr.ExitCodeOf(err)
	}
	l.Info().
		Str("run_id", rep.RunID).
		Int("candidates", rep.Stats.Candidates).
		Int("distinct", rep.Corpus.Len()).
		Dur("took", rep.Duration).
		Msg("thaicurate finished")
	return 0
}
