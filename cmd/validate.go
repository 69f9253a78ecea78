package cmd

import (
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jsonls-io/jsonls"
	"github.com/jsonls-io/jsonls/internal/config"
)

// validateReport is the --json output shape for the validate command.
type validateReport struct {
	SyntaxErrors []problemReport `json:"syntaxErrors"`
	Diagnostics  []problemReport `json:"diagnostics"`
}

// NewValidateCmd creates the "validate" subcommand: parse a file, then
// validate it against a JSON Schema document and report both syntax
// and schema diagnostics.
func NewValidateCmd() *cobra.Command {
	var schemaPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:          "validate <file> --schema <schema.json>",
		Short:        "Validate a JSON/JSONC file against a JSON Schema",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromCmd(cmd)
			path := args[0]

			if schemaPath == "" {
				return errors.New("--schema is required")
			}

			cfg, err := config.Load(config.FileName)
			if err != nil {
				return errors.Wrap(err, "loading project config")
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "reading %s", path)
			}
			schemaData, err := os.ReadFile(schemaPath)
			if err != nil {
				return errors.Wrapf(err, "reading schema %s", schemaPath)
			}

			schema, err := jsonls.ParseSchema(schemaData)
			if err != nil {
				return errors.Wrap(err, "parsing schema")
			}

			logger.Debug("validating file", "path", path, "schema", schemaPath)

			doc := jsonls.Parse(string(data), jsonls.ParseOptions{CollectComments: cfg.CollectComments})
			diagnostics := doc.Validate(schema)
			diagnostics = filterDisabledFormats(diagnostics, cfg)
			diagnostics = applyDefaultSeverity(diagnostics, cfg.DefaultSeverity)

			if asJSON {
				report := validateReport{
					SyntaxErrors: toProblemReports(doc.SyntaxErrors),
					Diagnostics:  toProblemReports(diagnostics),
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return errors.Wrap(enc.Encode(report), "encoding report")
			}

			printProblems(cmd, doc.SyntaxErrors)
			printProblems(cmd, diagnostics)

			if len(doc.SyntaxErrors) > 0 || hasErrorSeverity(diagnostics) {
				return errors.New("validation failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "Path to the JSON Schema document")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print a machine-readable JSON report")
	return cmd
}

// filterDisabledFormats drops format-mismatch diagnostics for formats
// the project config has turned off. Messages are built deterministically
// in format.go, always ending in `format "<name>".`, so the format name
// can be recovered without the config layer reaching into the validator.
func filterDisabledFormats(problems []jsonls.Problem, cfg *config.Config) []jsonls.Problem {
	if cfg == nil || len(cfg.Formats) == 0 {
		return problems
	}
	out := problems[:0]
	for _, p := range problems {
		if name, ok := formatNameFromMessage(p.Message); ok && !cfg.FormatEnabled(name) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func formatNameFromMessage(msg string) (string, bool) {
	const marker = `does not match format "`
	i := strings.Index(msg, marker)
	if i < 0 {
		return "", false
	}
	rest := msg[i+len(marker):]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// applyDefaultSeverity rebadges schema diagnostics (reported as
// warnings by the validator) to the configured default severity.
// "error" promotes them, "ignore" drops them, anything else leaves
// them untouched.
func applyDefaultSeverity(problems []jsonls.Problem, severity string) []jsonls.Problem {
	sev := jsonls.Severity(severity)
	if sev != jsonls.SeverityError && sev != jsonls.SeverityIgnore {
		return problems
	}
	out := problems[:0]
	for _, p := range problems {
		if p.Severity == jsonls.SeverityWarning {
			if sev == jsonls.SeverityIgnore {
				continue
			}
			p.Severity = sev
		}
		out = append(out, p)
	}
	return out
}

func hasErrorSeverity(problems []jsonls.Problem) bool {
	for _, p := range problems {
		if p.Severity == jsonls.SeverityError {
			return true
		}
	}
	return false
}
