// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the settle-convert CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/settle-convert/internal/logger"
	"github.com/pdiddy/settle-convert/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg is the resolved configuration, set before any subcommand runs.
	cfg types.Config

	log = zap.NewNop()
)

// rootCmd is the base command for the settle-convert CLI.
var rootCmd = &cobra.Command{
	Use:   "settle-convert",
	Short: "Convert transcripts to US GPA and medical reports to local units",
	Long: `settle-convert converts documents newcomers bring with them.

A transcript (gpa) is read line by line; course records such as
"Math, 4, A-" or "Biology: 85%" are mapped to the US 4.0 scale and
summarised. A medical report (medical) has lab values, temperatures,
heights and weights converted between unit systems.

Use "convert" for files or stdin and "serve" to expose the same
conversions over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = loadConfig()
		l, err := logger.New(cfg.Log)
		if err != nil {
			return err
		}
		log = l
		if used := viper.ConfigFileUsed(); used != "" {
			log.Debug("using config file", zap.String("path", used))
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./settle-convert.yaml or ~/.config/settle-convert/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "console", "log format: console or json")

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	viper.SetDefault("server.addr", types.DefaultAddr)
	viper.SetDefault("server.max_upload_bytes", types.DefaultMaxUploadBytes)
	viper.SetDefault("server.shutdown_timeout", types.DefaultShutdownTimeout)
	viper.SetDefault("conversion.output_format", string(types.OutputText))
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning: could not load .env:", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("settle-convert")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "settle-convert"))
		}
	}

	viper.SetEnvPrefix("SETTLE_CONVERT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && cfgFile != "" {
			fmt.Fprintln(os.Stderr, "warning: could not read config:", err)
		}
	}
}

// loadConfig assembles the typed configuration from viper.
func loadConfig() types.Config {
	return types.Config{
		Log: types.LogConfig{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
		},
		Server: types.ServerConfig{
			Addr:            viper.GetString("server.addr"),
			MaxUploadBytes:  viper.GetInt64("server.max_upload_bytes"),
			ShutdownTimeout: viper.GetDuration("server.shutdown_timeout"),
		},
		Conversion: types.ConversionConfig{
			Type:         types.ConversionType(viper.GetString("conversion.type")),
			OutputFormat: types.OutputFormat(viper.GetString("conversion.output_format")),
			InputDir:     viper.GetString("conversion.input_dir"),
			OutputDir:    viper.GetString("conversion.output_dir"),
		},
	}.WithDefaults()
}

func main() {
	err := rootCmd.Execute()
	_ = log.Sync()
	if err != nil {
		os.Exit(1)
	}
}
