package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordbook/internal/cli"
	"github.com/at-ishikawa/wordbook/internal/lexicon"
)

func newAddCommand() *cobra.Command {
	var manual bool

	cmd := &cobra.Command{
		Use:   "add <word> [definition] [part-of-speech] [example]",
		Short: "Add a word, fetching missing fields from the dictionary API",
		Args:  cobra.RangeArgs(1, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			var entry lexicon.Entry
			if len(args) > 1 {
				entry.Definition = args[1]
			}
			if len(args) > 2 {
				entry.PartOfSpeech = args[2]
			}
			if len(args) > 3 {
				entry.Example = args[3]
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			manager, err := newManager(cfg)
			if err != nil {
				return err
			}

			language := manager.Language()
			if manual {
				if len(args) != 4 {
					return fmt.Errorf("--manual requires the definition, part of speech and example arguments")
				}
				err = manager.ManualAddWord(word, language, entry.Definition, entry.PartOfSpeech, entry.Example)
			} else {
				err = manager.AddWord(cmd.Context(), word, language, entry)
			}
			if err != nil {
				return err
			}

			description, ok := manager.Describe(word, language)
			if !ok {
				return fmt.Errorf("%q disappeared right after being added", word)
			}
			cli.NewRenderer(os.Stdout).ShowDescription(description, cfg.Confidence.MaxConfidence/2)
			return nil
		},
	}

	cmd.Flags().BoolVar(&manual, "manual", false, "Require all fields as arguments instead of fetching them")
	return cmd
}

func newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <word>",
		Short: "Remove a word from the active language",
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

			language := manager.Language()
			if err := manager.RemoveWord(args[0], language); err != nil {
				return err
			}
			fmt.Printf("Removed %q from the %q dictionary.\n", lexicon.Normalize(args[0]), language)
			return nil
		},
	}
}

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>",
		Short: "Show a word's definition, example and confidence score",
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

			language := manager.Language()
			renderer := cli.NewRenderer(os.Stdout)
			description, ok := manager.Describe(args[0], language)
			if !ok {
				renderer.ShowNotFound(lexicon.Normalize(args[0]), language)
				return nil
			}
			renderer.ShowDescription(description, cfg.Confidence.MaxConfidence/2)
			return nil
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every word of the active language",
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
			words, _ := manager.ListWords(language)
			cli.NewRenderer(os.Stdout).ShowWords(language, words)
			return nil
		},
	}
}

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the registered languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			manager, err := newManager(cfg)
			if err != nil {
				return err
			}

			cli.NewRenderer(os.Stdout).ShowLanguages(manager.ListLanguages())
			return nil
		},
	}
}
