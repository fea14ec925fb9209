//go:build mage

// Package main contains Mage build targets for settle-convert developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "settle-convert"
	cmdPkg  = "./cmd/settle-convert"

	samplesIn  = "documents/in"
	samplesOut = "documents/out"
)

// Init creates the sample document directories used by Sample.
func Init() error {
	for _, dir := range []string{samplesIn, samplesOut} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Document directories initialized.")
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Sample writes the sample transcript and medical report into documents/in
// and converts each with its own conversion type into documents/out.
func Sample() error {
	mg.Deps(Init, Build)

	bin := filepath.Join(binDir, binName)
	for _, doc := range sampleDocuments {
		in := filepath.Join(samplesIn, doc.name)
		if err := os.WriteFile(in, []byte(doc.content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", in, err)
		}

		converted, err := sh.Output(bin, "convert", "--type", doc.convType, in)
		if err != nil {
			return fmt.Errorf("converting %s as %s: %w", doc.name, doc.convType, err)
		}
		base := strings.TrimSuffix(doc.name, filepath.Ext(doc.name))
		out := filepath.Join(samplesOut, base+"-"+doc.convType+".txt")
		if err := os.WriteFile(out, []byte(converted+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Println("  ", out)
	}
	return nil
}

// Stats prints project metrics: Go production and test lines of code.
func Stats() error {
	prod, test, err := countGoLines(".")
	if err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", test)
	return nil
}

// countGoLines counts non-blank lines in production and test Go files,
// skipping vendored and underscore-prefixed directories.
func countGoLines(root string) (prod, test int, err error) {
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".") || d.Name() == "vendor") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := countNonBlank(data)
		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, test, err
}

func countNonBlank(data []byte) int {
	n := 0
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if len(bytes.TrimSpace(sc.Bytes())) > 0 {
			n++
		}
	}
	return n
}
