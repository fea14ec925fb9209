package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/settle-convert/internal/convert"
	"github.com/pdiddy/settle-convert/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file|-]",
	Short: "Convert a transcript or medical report",
	Long: `Convert reads a document from a file, or from stdin when the argument is
"-" or omitted, and prints the converted document.

With --type gpa, course lines are mapped to the US 4.0 scale and a GPA
summary is appended. With --type medical, lab values, temperatures and
body measurements are converted and summarised.

Use --format json or yaml to include the structured values behind the
report. Use --batch to convert every .txt file in --in into --out.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	convType, err := convert.ParseType(string(cfg.Conversion.Type))
	if err != nil {
		return err
	}
	format, err := convert.ParseFormat(string(cfg.Conversion.OutputFormat))
	if err != nil {
		return err
	}

	batch, _ := cmd.Flags().GetBool("batch")
	if batch {
		return runBatch(cmd, convType)
	}

	var res types.Result
	if len(args) == 1 && args[0] != "-" {
		res, err = convert.ConvertFile(convType, args[0])
	} else {
		in := cmd.InOrStdin()
		if len(args) == 0 && in == os.Stdin && !stdinIsPipe() {
			return fmt.Errorf("no input: pass a file or pipe a document on stdin")
		}
		res, err = convertReader(convType, in)
	}
	if err != nil {
		return err
	}

	if res.Error != "" {
		log.Warn("conversion returned failure report", zap.String("type", string(convType)), zap.String("error", res.Error))
	}
	return convert.WriteExport(cmd.OutOrStdout(), res, format)
}

func convertReader(t types.ConversionType, r io.Reader) (types.Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return types.Result{}, fmt.Errorf("reading stdin: %w", err)
	}
	return convert.Convert(t, string(data))
}

func runBatch(cmd *cobra.Command, t types.ConversionType) error {
	inDir, outDir := cfg.Conversion.InputDir, cfg.Conversion.OutputDir
	if inDir == "" || outDir == "" {
		return fmt.Errorf("--batch requires --in and --out")
	}

	log.Debug("batch conversion", zap.String("in", inDir), zap.String("out", outDir))
	result, err := convert.ConvertBatch(cmd.Context(), t, inDir, outDir, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed conversion", result.Failed)
	}
	return nil
}

func init() {
	convertCmd.Flags().StringP("type", "t", "", "conversion type: gpa or medical")
	convertCmd.Flags().StringP("format", "f", "text", "output format: text, json, or yaml")
	convertCmd.Flags().Bool("batch", false, "convert every document in --in into --out")
	convertCmd.Flags().String("in", "", "input directory for --batch")
	convertCmd.Flags().String("out", "", "output directory for --batch")

	_ = viper.BindPFlag("conversion.type", convertCmd.Flags().Lookup("type"))
	_ = viper.BindPFlag("conversion.output_format", convertCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("conversion.input_dir", convertCmd.Flags().Lookup("in"))
	_ = viper.BindPFlag("conversion.output_dir", convertCmd.Flags().Lookup("out"))

	rootCmd.AddCommand(convertCmd)
}

// stdinIsPipe reports whether stdin is redirected rather than a terminal.
func stdinIsPipe() bool {
	fi, err := os.Stdin.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice == 0
}
