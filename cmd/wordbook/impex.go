package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/wordbook/internal/converter"
	"github.com/at-ishikawa/wordbook/internal/lexicon"
)

type Format string

func (f *Format) Set(val string) error {
	for _, format := range allFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f Format) String() string {
	return string(f)
}

func (f *Format) Type() string {
	return "Format"
}

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
)

var (
	_          pflag.Value = (*Format)(nil)
	allFormats             = []Format{FormatCSV, FormatMarkdown, FormatPDF}
)

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <csv-path>",
		Short: "Merge words from a CSV file into the active language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			manager, err := newManager(cfg)
			if err != nil {
				return err
			}

			result, err := manager.ImportCSV(args[0], manager.Language())
			if err != nil {
				return err
			}
			fmt.Println(result.Message())
			return nil
		},
	}
}

func newExportCommand() *cobra.Command {
	var output string
	format := FormatCSV

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the active language as a CSV, Markdown or PDF study sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			manager, err := newManager(cfg)
			if err != nil {
				return err
			}

			language := manager.Language()
			if output == "" {
				output = defaultExportPath(cfg.Lexicon.ExportDirectory, language, format)
			}

			switch format {
			case FormatCSV:
				if err := manager.ExportCSV(language, output); err != nil {
					return err
				}
			case FormatMarkdown, FormatPDF:
				entries, ok := manager.ListEntries(language)
				if !ok {
					return fmt.Errorf("language %q: %w", language, lexicon.ErrNotFound)
				}
				sheet := converter.StudySheet(language, entries)
				if format == FormatPDF {
					if err := converter.WritePDF(sheet, output); err != nil {
						return err
					}
					break
				}
				if dir := filepath.Dir(output); dir != "." {
					if err := os.MkdirAll(dir, 0755); err != nil {
						return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
					}
				}
				if err := os.WriteFile(output, []byte(sheet), 0644); err != nil {
					return fmt.Errorf("os.WriteFile(%s) > %w", output, err)
				}
			}

			fmt.Printf("Exported the %q dictionary to %s\n", language, output)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Output file path")
	cmd.Flags().Var(&format, "format", fmt.Sprintf("Export format. Possible values are %v", allFormats))
	return cmd
}

func defaultExportPath(exportDirectory, language string, format Format) string {
	switch format {
	case FormatMarkdown:
		return filepath.Join(exportDirectory, fmt.Sprintf("dictionary_%s.md", language))
	case FormatPDF:
		return filepath.Join(exportDirectory, fmt.Sprintf("dictionary_%s.pdf", language))
	default:
		return filepath.Join(exportDirectory, "dictionary_export.csv")
	}
}

func newSnapshotCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Dump the whole lexicon as a YAML snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			manager, err := newManager(cfg)
			if err != nil {
				return err
			}

			if output == "" {
				output = filepath.Join(cfg.Lexicon.ExportDirectory, "snapshot.yml")
			}
			if err := manager.WriteSnapshot(output); err != nil {
				return err
			}
			fmt.Printf("Wrote snapshot to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Output file path")
	return cmd
}
