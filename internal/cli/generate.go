package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cubedeck/cubedeck/pkg/alg"
	"github.com/cubedeck/cubedeck/pkg/anki"
	"github.com/cubedeck/cubedeck/pkg/cards"
	"github.com/cubedeck/cubedeck/pkg/document"
	"github.com/cubedeck/cubedeck/pkg/errors"
	"github.com/cubedeck/cubedeck/pkg/httputil"
	"github.com/cubedeck/cubedeck/pkg/layout"
	"github.com/cubedeck/cubedeck/pkg/visualcube"
)

// generateOptions holds the flag values for the generate command.
type generateOptions struct {
	set       string
	pattern   string
	deckFile  string
	outDir    string
	rows      int
	cols      int
	workers   int
	skipIcons bool
	refresh   bool
}

// newGenerateCmd creates the generate command, the main pipeline:
// select algorithms, allocate cards, fetch icons, and write the LaTeX
// document, Makefile, and Anki export into the target directory.
func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate flashcards for an algorithm set",
		Long: `Generate produces a printable flashcard deck for the selected algorithm set.

The target directory receives the LaTeX document (fronts and backs
alternating for duplex printing), one rendered case icon per card, a
Makefile that builds the final PDF, and an Anki import file.

Examples:
  cubedeck generate --set pll
  cubedeck generate --set oll --algorithm 'OLL 2*' -o oll-cards
  cubedeck generate --deck-file my-f2l.toml --rows 4 --cols 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.set, "set", "s", string(alg.SetPLL), "algorithm set (pll, oll, 2-look-oll, big-cube, all)")
	cmd.Flags().StringVarP(&opts.pattern, "algorithm", "a", "", "only include algorithms matching this glob pattern")
	cmd.Flags().StringVarP(&opts.deckFile, "deck-file", "d", "", "generate from a TOML deck file instead of a built-in set")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "lernkarten", "target directory for the generated deck")
	cmd.Flags().IntVar(&opts.rows, "rows", 3, "card rows per page")
	cmd.Flags().IntVar(&opts.cols, "cols", 3, "card columns per page")
	cmd.Flags().IntVar(&opts.workers, "workers", visualcube.DefaultWorkers, "concurrent icon fetches")
	cmd.Flags().BoolVar(&opts.skipIcons, "skip-icons", false, "reuse icons already in the target directory instead of fetching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the icon cache and fetch fresh renders")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if err := errors.ValidateGrid(opts.rows, opts.cols); err != nil {
		return err
	}
	if err := errors.ValidateOutputDir(opts.outDir); err != nil {
		return err
	}

	algs, deckName, err := selectAlgorithms(opts)
	if err != nil {
		return err
	}
	logger.Debug("selected algorithms", "count", len(algs), "deck", deckName)

	cardSet, err := cards.Allocate(algs)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create target directory: %w", err)
	}

	icons, err := collectIcons(cmd, opts, cardSet)
	if err != nil {
		return err
	}
	cardSet, err = cards.WithIcons(cardSet, icons)
	if err != nil {
		return err
	}

	ankiPath, err := anki.Export(opts.outDir, deckName, cardSet)
	if err != nil {
		return err
	}

	pairs, err := layout.Pages(len(cardSet), opts.rows, opts.cols)
	if err != nil {
		return err
	}

	doc, err := document.Assemble(pairs, cards.ByIndex(cardSet))
	if err != nil {
		return err
	}
	docPath := filepath.Join(opts.outDir, document.Filename)
	if err := os.WriteFile(docPath, doc, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := document.WriteMakefile(opts.outDir); err != nil {
		return fmt.Errorf("write Makefile: %w", err)
	}

	printSuccess("Generated %s deck", StyleHighlight.Render(deckName))
	printStats(len(cardSet), len(pairs))
	printFile(docPath)
	printFile(ankiPath)
	printNewline()
	printNextStep("Build the printable PDF", "make -C "+opts.outDir)
	return nil
}

// selectAlgorithms resolves the algorithm selection: either a user deck file
// or a built-in set, in both cases narrowed by the glob pattern.
func selectAlgorithms(opts *generateOptions) ([]alg.Algorithm, string, error) {
	var (
		algs     []alg.Algorithm
		deckName string
		err      error
	)

	if opts.deckFile != "" {
		var deck *alg.Deck
		deck, err = alg.LoadDeck(opts.deckFile)
		if err != nil {
			return nil, "", err
		}
		algs, deckName = deck.Algorithms, deck.Name
	} else {
		algs, err = alg.Select(alg.Set(opts.set))
		if err != nil {
			return nil, "", err
		}
		deckName = alg.DeckName(alg.Set(opts.set))
	}

	algs, err = alg.Filter(algs, opts.pattern)
	if err != nil {
		return nil, "", err
	}
	return algs, deckName, nil
}

// collectIcons produces the card-index to icon-handle mapping, either by
// fetching renders from the icon service or, with --skip-icons, by assuming
// the expected files already sit in the target directory.
func collectIcons(cmd *cobra.Command, opts *generateOptions, cardSet []cards.Card) (map[int]string, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if opts.skipIcons {
		printWarning("Skipping icon fetch, reusing files in %s", opts.outDir)
		icons := make(map[int]string, len(cardSet))
		for _, c := range cardSet {
			name := visualcube.IconFilename(c.Index)
			if _, err := os.Stat(filepath.Join(opts.outDir, name)); err != nil {
				return nil, errors.Wrap(errors.ErrCodeMissingIcon, err,
					"--skip-icons set but icon for card %d (%s) is not in %s", c.Index, c.Algorithm.Name, opts.outDir)
			}
			icons[c.Index] = name
		}
		logger.Debug("reusing existing icons", "count", len(icons))
		return icons, nil
	}

	cache, err := httputil.NewCache("", 0)
	if err != nil {
		return nil, fmt.Errorf("init icon cache: %w", err)
	}
	client := visualcube.NewClient(cache)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %d case icons...", len(cardSet)))
	spinner.Start()

	prog := newProgress(logger)
	icons, err := client.FetchAll(ctx, cardSet, opts.outDir, visualcube.FetchOptions{
		Workers: opts.workers,
		Refresh: opts.refresh,
	})
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return nil, err
		}
		spinner.StopWithError(fmt.Sprintf("Icon fetch failed: %s", errors.UserMessage(err)))
		return nil, err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Fetched %d icons", len(icons)))
	return icons, nil
}
