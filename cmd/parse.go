package cmd

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jsonls-io/jsonls"
	"github.com/jsonls-io/jsonls/pkg/jsonpointer"
)

// parseReport is the --json output shape for the parse command.
type parseReport struct {
	SyntaxErrors []problemReport `json:"syntaxErrors"`
	Paths        []string        `json:"paths,omitempty"`
}

type problemReport struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Severity string `json:"severity"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message"`
}

// NewParseCmd creates the "parse" subcommand: parse a JSON/JSONC file
// and report its syntax diagnostics (and, with --tree, every node
// path).
func NewParseCmd() *cobra.Command {
	var tree bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:          "parse <file>",
		Short:        "Parse a JSON/JSONC file and report syntax diagnostics",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromCmd(cmd)
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "reading %s", path)
			}
			logger.Debug("parsing file", "path", path, "bytes", len(data))

			doc := jsonls.Parse(string(data), jsonls.ParseOptions{CollectComments: tree})

			var paths []string
			if tree && doc.Root != nil {
				jsonls.Visit(doc.Root, func(n *jsonls.Node) bool {
					// Property and key nodes share the value node's path;
					// list each path once, on the value.
					if n.Kind == jsonls.KindProperty || (n.Kind == jsonls.KindString && n.IsKey) {
						return true
					}
					paths = append(paths, jsonpointer.FromPath(jsonls.GetPath(n)))
					return true
				})
			}

			if asJSON {
				report := parseReport{SyntaxErrors: toProblemReports(doc.SyntaxErrors), Paths: paths}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return errors.Wrap(enc.Encode(report), "encoding report")
			}

			printProblems(cmd, doc.SyntaxErrors)
			for _, p := range paths {
				if p == "" {
					p = "/"
				}
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}

			if len(doc.SyntaxErrors) > 0 {
				return errors.New("syntax errors found")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&tree, "tree", false, "Also print a path listing of every node")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print a machine-readable JSON report")
	return cmd
}

func toProblemReports(problems []jsonls.Problem) []problemReport {
	out := make([]problemReport, len(problems))
	for i, p := range problems {
		out[i] = problemReport{
			Start:    p.Location.Start,
			End:      p.Location.End,
			Severity: string(p.Severity),
			Message:  p.Message,
		}
		if p.HasCode() {
			out[i].Code = p.Code.String()
		}
	}
	return out
}

func printProblems(cmd *cobra.Command, problems []jsonls.Problem) {
	for _, p := range problems {
		w := cmd.OutOrStdout()
		if p.Severity == jsonls.SeverityError {
			w = cmd.ErrOrStderr()
		}
		fmt.Fprintf(w, "%d:%d %s: %s\n", p.Location.Start, p.Location.End, p.Severity, p.Message)
	}
}
