package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quizforge/docxtract/internal/config"
	"github.com/quizforge/docxtract/internal/export"
	"github.com/quizforge/docxtract/internal/logger"
	"github.com/quizforge/docxtract/pkg/docx"
)

var (
	cfgFile         string
	outputPath      string
	outputFormat    string
	prettyJSON      bool
	probeDimensions bool
	paragraphsOnly  bool
	debugMode       bool
)

// NewRootCommand creates the root command.
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docxtract [flags] input.docx",
		Short: "docxtract pulls paragraphs, highlights and images out of DOCX files",
		Long: `docxtract reads a DOCX file and reports every paragraph in document
order: its plain text (inline images become {{image:N}} placeholders),
the highlighted spans with their colors, and the embedded images with
content type and pixel dimensions.

Output formats:
  - json:  the full structured result (image bytes base64-encoded)
  - xlsx:  a review workbook with Paragraphs/Highlights/Images sheets
  - table: a terminal summary`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runExtract(cmd, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches $HOME and . for .docxtract.yaml)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout; required for xlsx)")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format: json, xlsx or table")
	rootCmd.Flags().BoolVar(&prettyJSON, "pretty", false, "indent JSON output")
	rootCmd.Flags().BoolVar(&probeDimensions, "probe-dimensions", false, "probe EMF/WMF headers for sizes the drawing markup lacks")
	rootCmd.Flags().BoolVar(&paragraphsOnly, "paragraphs-only", false, "emit only the paragraph list, without the document-level image inventory")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	return rootCmd
}

func runExtract(cmd *cobra.Command, inputPath string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)

	// Reject a bad format before touching the input file.
	if err := config.ValidateFormat(cfg.Format); err != nil {
		return err
	}
	if cfg.Format == config.FormatXLSX && outputPath == "" {
		return fmt.Errorf("xlsx output requires --output")
	}

	log := logger.NewLogger(cfg.Debug)
	defer func() {
		_ = log.Sync()
	}()
	log = log.With(
		zap.String("extraction_id", uuid.NewString()),
		zap.String("input", inputPath))

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	spinner, _ := pterm.DefaultSpinner.Start("Extracting " + inputPath)

	extractor := docx.NewExtractor(log)
	var result *docx.ExtractResult
	if paragraphsOnly {
		paragraphs, perr := extractor.ExtractParagraphs(data)
		if perr == nil {
			result = &docx.ExtractResult{Paragraphs: paragraphs}
		}
		err = perr
	} else {
		result, err = extractor.Extract(data)
	}
	if err != nil {
		if spinner != nil {
			spinner.Fail("Extraction failed")
		}
		log.Error("extraction failed", zap.Error(err))
		return err
	}
	if spinner != nil {
		spinner.Success(fmt.Sprintf("Extracted %d paragraphs, %d media files",
			len(result.Paragraphs), len(result.AllImages)))
	}

	if cfg.ProbeDimensions {
		export.ProbeMissingDimensions(result)
	}

	return writeOutput(cfg, result)
}

// applyFlagOverrides lets explicitly set flags win over the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("format") {
		cfg.Format = strings.ToLower(outputFormat)
	}
	if cmd.Flags().Changed("pretty") {
		cfg.Pretty = prettyJSON
	}
	if cmd.Flags().Changed("probe-dimensions") {
		cfg.ProbeDimensions = probeDimensions
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debugMode
	}
}

func writeOutput(cfg *config.Config, result *docx.ExtractResult) error {
	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outputPath, err)
		}
		defer f.Close()
		out = f
	}

	switch cfg.Format {
	case config.FormatJSON:
		if paragraphsOnly {
			return export.WriteParagraphsJSON(out, result.Paragraphs, cfg.Pretty)
		}
		return export.WriteJSON(out, result, cfg.Pretty)
	case config.FormatXLSX:
		return export.WriteXLSX(out, result)
	case config.FormatTable:
		export.WriteSummary(out, result)
		return nil
	default:
		return config.ValidateFormat(cfg.Format)
	}
}
