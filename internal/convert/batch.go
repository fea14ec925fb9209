// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/settle-convert/pkg/types"
)

// documentExts lists the input extensions picked up by batch conversion.
var documentExts = map[string]bool{
	".txt":  true,
	".text": true,
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of documents processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any document failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Status is the per-document outcome of a batch run.
type Status string

const (
	StatusConverted Status = "converted"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// OutputPath returns where the converted form of inPath is written.
func OutputPath(t types.ConversionType, inPath, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
	return filepath.Join(outDir, base+"-"+string(t)+".txt")
}

// ConvertDocumentFile converts one document to outDir. If the output already
// exists it skips conversion. A pipeline failure report is still written so
// the reader sees the diagnostic, but the document counts as failed.
func ConvertDocumentFile(t types.ConversionType, inPath, outDir string, w io.Writer) Status {
	outPath := OutputPath(t, inPath, outDir)
	name := filepath.Base(inPath)

	if _, err := os.Stat(outPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", name)
		return StatusSkipped
	}

	res, err := ConvertFile(t, inPath)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		return StatusFailed
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		return StatusFailed
	}
	if err := os.WriteFile(outPath, []byte(res.Converted), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		return StatusFailed
	}

	if res.Error != "" {
		fmt.Fprintf(w, "failed:  %s (%s)\n", name, res.Error)
		return StatusFailed
	}
	fmt.Fprintf(w, "converted: %s\n", name)
	return StatusConverted
}

// ConvertBatch converts every document in inDir into outDir, printing
// per-file status to w and returning a summary. It stops early when ctx is
// cancelled.
func ConvertBatch(ctx context.Context, t types.ConversionType, inDir, outDir string, w io.Writer) (BatchResult, error) {
	if _, err := ParseType(string(t)); err != nil {
		return BatchResult{}, err
	}

	paths, err := documentPaths(inDir)
	if err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	for _, p := range paths {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		switch ConvertDocumentFile(t, p, outDir, w) {
		case StatusConverted:
			result.Converted++
		case StatusSkipped:
			result.Skipped++
		case StatusFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result, nil
}

// documentPaths lists convertible files in dir, sorted by name.
func documentPaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !documentExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
