package domain

import "context"

// RunnerPort curates an in-memory corpus
type RunnerPort interface {
	Run(ctx context.Context, corpus string) (Report, error)
}

// JobPort curates a file into a file
type JobPort interface {
	RunFile(ctx context.Context, in, out string) (Report, error)
}

// ReaderPort loads a whole UTF-8 corpus
type ReaderPort interface {
	Read(ctx context.Context, path string) (string, error)
}

// WriterPort persists accepted sentences, one per line
type WriterPort interface {
	WriteLines(ctx context.Context, path string, lines []string) error
}

// Ports are dependencies injected into the curate module
type Ports struct {
	Reader ReaderPort // required
	Writer WriterPort // required
}
