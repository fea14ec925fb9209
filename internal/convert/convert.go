// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert dispatches documents to the gpa and medical pipelines,
// converts directories of documents in batch, and exports results.
package convert

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pdiddy/settle-convert/internal/gpa"
	"github.com/pdiddy/settle-convert/internal/medical"
	"github.com/pdiddy/settle-convert/internal/metrics"
	"github.com/pdiddy/settle-convert/pkg/types"
)

// ErrUnknownConversionType is returned for any type other than gpa or
// medical. It is a caller error and never reaches a pipeline.
var ErrUnknownConversionType = errors.New("unknown conversion type")

// pipeline converts a document and renders failures as text.
type pipeline struct {
	convert func(text string) (types.Result, error)
	failure func(err error, text string) string
}

var pipelines = map[types.ConversionType]pipeline{
	types.ConversionGPA: {
		convert: func(text string) (types.Result, error) {
			rep, err := gpa.Convert(text)
			if err != nil {
				return types.Result{}, err
			}
			sum := rep.Summary
			return types.Result{Converted: rep.Text, Summary: &sum, Courses: rep.Courses}, nil
		},
		failure: gpa.FailureReport,
	},
	types.ConversionMedical: {
		convert: func(text string) (types.Result, error) {
			rep, err := medical.Convert(text)
			if err != nil {
				return types.Result{}, err
			}
			return types.Result{Converted: rep.Text, Conversions: rep.Conversions}, nil
		},
		failure: medical.FailureReport,
	},
}

// ParseType validates a conversion type string.
func ParseType(s string) (types.ConversionType, error) {
	t := types.ConversionType(s)
	if _, ok := pipelines[t]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownConversionType, s)
	}
	return t, nil
}

// Convert runs text through the pipeline for t. The only error is
// ErrUnknownConversionType; pipeline failures are returned as a Result
// whose Converted field holds the failure report and whose Error is set.
func Convert(t types.ConversionType, text string) (types.Result, error) {
	p, ok := pipelines[t]
	if !ok {
		metrics.UnknownTypeRequests.Inc()
		return types.Result{}, fmt.Errorf("%w: %s", ErrUnknownConversionType, t)
	}

	start := time.Now()
	res := run(p, text)
	res.Type = t
	res.Original = text
	metrics.ObserveConversion(string(t), recordCount(res), res.Error != "", time.Since(start))
	return res, nil
}

// run calls the pipeline, turning errors and panics into a failure report.
func run(p pipeline, text string) (res types.Result) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%v", r)
			res = types.Result{Converted: p.failure(err, text), Error: err.Error()}
		}
	}()
	res, err := p.convert(text)
	if err != nil {
		return types.Result{Converted: p.failure(err, text), Error: err.Error()}
	}
	return res
}

func recordCount(res types.Result) int {
	return len(res.Courses) + len(res.Conversions)
}

// ConvertFile reads the document at path and converts it.
func ConvertFile(t types.ConversionType, path string) (types.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return types.Result{}, fmt.Errorf("file not found at path %s: %w", path, err)
		}
		return types.Result{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Convert(t, string(data))
}
