package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordbook/internal/database"
	"github.com/at-ishikawa/wordbook/internal/datasync"
	"github.com/at-ishikawa/wordbook/internal/lexicon"
	"github.com/at-ishikawa/wordbook/schemas"
)

func newDatasyncCommand() *cobra.Command {
	datasyncCmd := &cobra.Command{
		Use:   "datasync",
		Short: "Synchronization commands between the lexicon files and the database",
	}

	datasyncCmd.AddCommand(newDatasyncMigrateCommand())
	datasyncCmd.AddCommand(newDatasyncImportDBCommand())
	return datasyncCmd
}

func newDatasyncMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema migrations to the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}

			if err := database.ApplyMigrations(cmd.Context(), db, schemas.Migrations); err != nil {
				return fmt.Errorf("database.ApplyMigrations() > %w", err)
			}
			fmt.Println("Migrations applied.")
			return nil
		},
	}
}

func newDatasyncImportDBCommand() *cobra.Command {
	var dryRun bool
	var updateExisting bool

	cmd := &cobra.Command{
		Use:   "import-db",
		Short: "Import the lexicon files into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			wordRepo := datasync.NewDBWordRepository(db)

			store := lexicon.NewStore(cfg.Lexicon.DictionaryFile, cfg.Lexicon.LanguagesFile)
			store.Load()

			importer := datasync.NewImporter(wordRepo, os.Stdout)
			opts := datasync.ImportOptions{
				DryRun:         dryRun,
				UpdateExisting: updateExisting,
			}

			result, err := importer.ImportLexicon(ctx, store.Lexicon(), opts)
			if err != nil {
				return fmt.Errorf("importer.ImportLexicon() > %w", err)
			}

			fmt.Println("\nImport Summary:")
			if opts.DryRun {
				fmt.Println("  (dry-run mode, no changes made)")
			}
			fmt.Printf("  Words: %d new, %d skipped, %d updated\n", result.WordsNew, result.WordsSkipped, result.WordsUpdated)

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	cmd.Flags().BoolVar(&updateExisting, "update-existing", false, "Update existing records with new data")
	return cmd
}
