// Package textfile reads corpora from and writes curated sentences to local files
//
// Design choices:
// - Whole-file reads; the corpus is expected to fit in memory.
// - Files ending in .gz are transparently decompressed.
// - Invalid UTF-8 is fatal (MalformedInput); control characters are stripped.
// - Writes go to a temp file in the target directory and are renamed into place,
//   so a failed run never leaves a half-written corpus.
package textfile
