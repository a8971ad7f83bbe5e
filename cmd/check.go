package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/josephlewis42/cmdexpr/core/logger"
	"github.com/josephlewis42/cmdexpr/core/render"
	"github.com/josephlewis42/cmdexpr/core/suite"
	"github.com/spf13/cobra"
)

var checkVars map[string]string

// checkCmd runs compilation suites
var checkCmd = &cobra.Command{
	Use:   "check SUITE.yaml...",
	Short: "Run suites of pipelines against their expected trees.",
	Args:  cobra.MinimumNArgs(1),
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

		vars := make(map[string]string)
		for k, v := range cfg.Variables {
			vars[k] = v
		}
		for k, v := range checkVars {
			vars[k] = v
		}

		printer := render.FromConfig(cfg)
		failed := 0
		for _, path := range args {
			n, err := runSuiteFile(cmd.OutOrStdout(), printer, events, path, vars)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			failed += n
		}

		if failed > 0 {
			return fmt.Errorf("%d case(s) failed", failed)
		}
		return nil
	},
}

func runSuiteFile(w io.Writer, printer *render.Printer, events *logger.SessionLogger, path string, vars map[string]string) (int, error) {
	fd, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer fd.Close()

	s, err := suite.Load(fd)
	if err != nil {
		return 0, err
	}
	if s.Name == "" {
		s.Name = path
	}

	fmt.Fprintln(w, printer.Sprintf(render.ColorBoldBlue, "%s (%d cases)", s.Name, len(s.Cases)))

	results := s.Run(vars)
	for _, result := range results {
		detail := ""
		if result.Passed {
			fmt.Fprintf(w, "%s %s/%s\n", printer.Sprintf(render.ColorBoldGreen, "PASS"), s.Name, result.Case.Name)
		} else {
			want := result.Case.Tree
			if want == "" {
				want = result.Case.Error
			}
			detail = fmt.Sprintf("want %s, got %s", want, result.Actual)
			fmt.Fprintf(w, "%s %s/%s: %s\n", printer.Sprintf(render.ColorBoldRed, "FAIL"), s.Name, result.Case.Name, detail)
		}

		if err := events.Record(result.Event); err != nil {
			log.Printf("Error recording event: %v", err)
		}
		if err := events.Record(&logger.CheckCase{
			Suite:  s.Name,
			Case:   result.Case.Name,
			Passed: result.Passed,
			Detail: detail,
		}); err != nil {
			log.Printf("Error recording event: %v", err)
		}
	}

	return suite.Failed(results), nil
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringToStringVar(&checkVars, "var", nil, "Bind a variable for every suite (suite variables win).")
}
