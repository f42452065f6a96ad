package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"newsbrief/internal/adapter/fs"
	"newsbrief/internal/domain"
)

var (
	summarizeText      string
	summarizeSentences int
	summarizeJSON      bool
	summarizeScores    bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [files...]",
	Short: "Summarize text files or stdin",
	Long: `Summarize plain-text articles. Arguments are files or directories;
directories are walked with the configured include/exclude globs. With
no arguments and no --text flag, text is read from stdin.

Examples:
  newsbrief summarize article.txt
  newsbrief summarize --sentences 3 articles/
  cat article.txt | newsbrief summarize --json`,
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	summarizeCmd.Flags().StringVarP(&summarizeText, "text", "t", "", "summarize this text instead of files")
	summarizeCmd.Flags().IntVarP(&summarizeSentences, "sentences", "n", 0, "sentences per summary (default from config)")
	summarizeCmd.Flags().BoolVar(&summarizeJSON, "json", false, "output as JSON")
	summarizeCmd.Flags().BoolVar(&summarizeScores, "scores", false, "print every sentence with its centrality score")
}

type summaryOutput struct {
	Source    string   `json:"source"`
	Sentences []string `json:"sentences"`
	Summary   string   `json:"summary"`
}

func runSummarize(cmd *cobra.Command, args []string) error {
	summarizer, err := loadSummarizer()
	if err != nil {
		return err
	}

	count := cfg.Summary.Sentences
	if summarizeSentences > 0 {
		count = summarizeSentences
	}

	inputs, err := collectInputs(args)
	if err != nil {
		return err
	}

	var outputs []summaryOutput
	for _, in := range inputs {
		if summarizeScores {
			printScores(summarizer.Scores(in.text), in.name)
			continue
		}

		summary, err := summarizer.Summarize(in.text, count)
		if err != nil {
			return fmt.Errorf("failed to summarize %s: %w", in.name, err)
		}

		sentences := make([]string, len(summary.Sentences))
		for i, s := range summary.Sentences {
			sentences[i] = s.Text
		}
		outputs = append(outputs, summaryOutput{
			Source:    in.name,
			Sentences: sentences,
			Summary:   summary.Text(),
		})
	}

	if summarizeScores {
		return nil
	}

	if summarizeJSON {
		data, _ := json.MarshalIndent(outputs, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	for _, out := range outputs {
		if len(outputs) > 1 {
			fmt.Printf("--- %s ---\n", out.Source)
		}
		if out.Summary == "" {
			fmt.Println("(empty document)")
		} else {
			fmt.Println(out.Summary)
		}
		if len(outputs) > 1 {
			fmt.Println()
		}
	}

	return nil
}

type input struct {
	name string
	text string
}

// collectInputs resolves the command arguments to texts: --text wins,
// then files and walked directories, then stdin.
func collectInputs(args []string) ([]input, error) {
	if summarizeText != "" {
		return []input{{name: "text", text: summarizeText}}, nil
	}

	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []input{{name: "stdin", text: string(data)}}, nil
	}

	walker := fs.NewWalker(cfg.Input.Includes, cfg.Input.Excludes)

	var inputs []input
	for _, arg := range args {
		path, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("path does not exist: %w", err)
		}

		var paths []string
		if info.IsDir() {
			paths, err = walker.Walk(path)
			if err != nil {
				return nil, fmt.Errorf("failed to walk %s: %w", path, err)
			}
		} else {
			paths = []string{path}
		}

		for _, p := range paths {
			text, err := fs.ReadFile(p)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", p, err)
			}
			inputs = append(inputs, input{name: p, text: text})
		}
	}

	return inputs, nil
}

func printScores(ranked []domain.ScoredSentence, name string) {
	fmt.Printf("--- %s ---\n", name)
	for _, r := range ranked {
		fmt.Printf("[%3d] %.6f  %s\n", r.Sentence.Index, r.Score, r.Sentence.Text)
	}
}
