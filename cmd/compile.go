package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/josephlewis42/cmdexpr/core/compiler"
	"github.com/josephlewis42/cmdexpr/core/logger"
	"github.com/josephlewis42/cmdexpr/core/render"
	"github.com/josephlewis42/cmdexpr/core/token"
	"github.com/spf13/cobra"
)

var errCompileFailed = errors.New("compilation failed")

var (
	compileVars    map[string]string
	compilePretty  bool
	compileCompact bool
)

// compileCmd compiles a single pipeline
var compileCmd = &cobra.Command{
	Use:   "compile [flags] -- PIPELINE...",
	Short: "Compile a pipeline and print its expression tree.",
	Long: `Compile a pipeline and print its expression tree.

Arguments are joined with spaces and split again, so quote the whole pipeline
to keep quoted words intact:

  cmdexpr compile -- 'grep "two words" < in.txt | wc -l > null'

Words starting with $ are variables, usable after <<<. Values come from the
configuration and --var flags.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfigOrDefault()
		if err != nil {
			return err
		}

		events, logFd, err := openEventLog(cfg)
		if err != nil {
			return err
		}
		defer logFd.Close()

		vars := cfg.Resolver()
		for k, v := range compileVars {
			vars[k] = []byte(v)
		}

		printer := render.FromConfig(cfg)
		switch {
		case compilePretty:
			printer.Pretty = true
		case compileCompact:
			printer.Pretty = false
		}

		tokens, err := token.Split(strings.Join(args, " "))
		if err != nil {
			return err
		}

		tree, err := compiler.Compile(tokens, vars)
		if logErr := events.Record(logger.NewCompile("compile", tokens, tree, err)); logErr != nil {
			log.Printf("Error recording event: %v", logErr)
		}

		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), printer.Error(tokens, err))
			return errCompileFailed
		}

		fmt.Fprintln(cmd.OutOrStdout(), printer.Tree(tree))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringToStringVar(&compileVars, "var", nil, "Bind a variable for <<< (e.g. --var input=hello).")
	compileCmd.Flags().BoolVarP(&compilePretty, "pretty", "p", false, "Print the tree indented across lines.")
	compileCmd.Flags().BoolVarP(&compileCompact, "compact", "c", false, "Print the tree on a single line.")
}
