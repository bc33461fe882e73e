package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eykd/gwt-go/internal/lint"
)

// defaultLintConfigPath is where check looks for conventions when --config
// is not given.
const defaultLintConfigPath = ".gwtlint.yaml"

// stdinPath is the path label used for diagnostics on titles read from
// standard input.
const stdinPath = "<stdin>"

// CheckIO handles file input for the check command.
type CheckIO interface {
	// ReadTitles reads title lines from the named file, one title per line.
	ReadTitles(path string) ([]string, error)
	// ReadConfig reads the lint config file at path. The bool reports
	// whether the file exists.
	ReadConfig(path string) ([]byte, bool, error)
}

// checkDiagnosticJSON is the JSON output type for a single check diagnostic.
type checkDiagnosticJSON struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Path     string `json:"path"`
	Line     int    `json:"line"`
	Title    string `json:"title"`
}

// NewCheckCmd creates the check subcommand. It lints rendered titles — one
// per line, from the named files or standard input — against the naming
// conventions in .gwtlint.yaml, and exits non-zero when any error-severity
// finding exists. Typical input is piped subtest names, e.g. from
// go test -list '.*'.
func NewCheckCmd(io CheckIO) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "check [file...]",
		Short:        "Check rendered test titles against naming conventions",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			jsonMode, _ := cmd.Flags().GetBool("json")

			cfg, err := loadCheckConfig(io, configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}

			type sourceDiag struct {
				path string
				diag lint.Diagnostic
			}
			var diags []sourceDiag

			if len(args) == 0 {
				titles, err := readTitleLines(cmd)
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				for _, d := range lint.Check(titles, cfg) {
					diags = append(diags, sourceDiag{path: stdinPath, diag: d})
				}
			}
			for _, path := range args {
				titles, err := io.ReadTitles(path)
				if err != nil {
					return fmt.Errorf("reading titles: %w", err)
				}
				for _, d := range lint.Check(titles, cfg) {
					diags = append(diags, sourceDiag{path: path, diag: d})
				}
			}

			// Emit diagnostics and detect any error-severity findings.
			hasError := false
			if jsonMode {
				jsonDiags := make([]checkDiagnosticJSON, len(diags))
				for i, sd := range diags {
					jsonDiags[i] = checkDiagnosticJSON{
						Code:     string(sd.diag.Code),
						Severity: string(sd.diag.Severity),
						Message:  sd.diag.Message,
						Path:     sd.path,
						Line:     sd.diag.Line,
						Title:    sd.diag.Title,
					}
					if sd.diag.Severity == lint.SeverityError {
						hasError = true
					}
				}
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(jsonDiags); err != nil {
					return fmt.Errorf("encoding output: %w", err)
				}
			} else {
				for _, sd := range diags {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s:%d: %s\n",
						string(sd.diag.Code),
						string(sd.diag.Severity),
						sd.path,
						sd.diag.Line,
						sd.diag.Message,
					)
					if sd.diag.Severity == lint.SeverityError {
						hasError = true
					}
				}
			}

			if hasError {
				return fmt.Errorf("titles have naming errors")
			}
			return nil
		},
	}

	cmd.Flags().String("config", defaultLintConfigPath, "path to the lint config file")
	cmd.Flags().Bool("json", false, "output diagnostics as a JSON array")

	return cmd
}

// loadCheckConfig resolves the lint config: an explicitly named file must
// exist, the default path is optional, and a missing default falls back to
// the built-in conventions.
func loadCheckConfig(io CheckIO, path string, explicit bool) (lint.Config, error) {
	data, exists, err := io.ReadConfig(path)
	if err != nil {
		return lint.Config{}, fmt.Errorf("reading lint config: %w", err)
	}
	if !exists {
		if explicit {
			return lint.Config{}, fmt.Errorf("lint config %s does not exist", path)
		}
		return lint.DefaultConfig(), nil
	}
	cfg, err := lint.ParseConfig(data)
	if err != nil {
		return lint.Config{}, err
	}
	return cfg, nil
}

// readTitleLines reads title lines from the command's standard input.
func readTitleLines(cmd *cobra.Command) ([]string, error) {
	var titles []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		titles = append(titles, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return titles, nil
}

// fileCheckIO implements CheckIO using OS file I/O.
type fileCheckIO struct{}

func newDefaultCheckIO() fileCheckIO {
	return fileCheckIO{}
}

// ReadTitles reads path and splits it into lines. A trailing newline does
// not produce an extra empty title.
func (fileCheckIO) ReadTitles(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}

// ReadConfig reads the config file at path, mapping ErrNotExist to
// exists=false.
func (fileCheckIO) ReadConfig(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}
