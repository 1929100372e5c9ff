package service

import (
	"context"

	perr "thaicurate/internal/platform/errors"
	"thaicurate/internal/platform/logger"
	"thaicurate/internal/services/curate/domain"
)

// Job implements domain.JobPort on top of a runner and file ports
type Job struct {
	Runner domain.RunnerPort
	Reader domain.ReaderPort
	Writer domain.WriterPort
	DryRun bool
}

// RunFile reads in, curates it and writes the accepted set to out. Nothing is
// written when the run fails or DryRun is set
func (j *Job) RunFile(ctx context.Context, in, out string) (domain.Report, error) {
	if in == "" {
		return domain.Report{}, perr.InvalidArgf("input path is required")
	}
	if out == "" && !j.DryRun {
		return domain.Report{}, perr.InvalidArgf("output path is required")
	}

	text, err := j.Reader.Read(ctx, in)
	if err != nil {
		return domain.Report{}, err
	}
	rep, err := j.Runner.Run(ctx, text)
	if err != nil {
		return domain.Report{}, perr.WithOp(err, "curate "+in)
	}

	log := logger.C(logger.WithRun(ctx, rep.RunID))
	if j.DryRun {
		log.Info().Int("distinct", rep.Corpus.Len()).Msg("dry run; output not written")
		return rep, nil
	}
	if err := j.Writer.WriteLines(ctx, out, rep.Lines()); err != nil {
		return domain.Report{}, err
	}
	log.Info().Str("out", out).Int("lines", rep.Corpus.Len()).Msg("corpus written")
	return rep, nil
}
