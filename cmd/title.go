package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eykd/gwt-go/gwt"
	"github.com/eykd/gwt-go/gwt/gwttest"
)

// titleOutput is the JSON output schema for the title subcommands.
type titleOutput struct {
	Titles []string `json:"titles"`
}

// NewTitleCmd creates the title subcommand group. Each subcommand drives the
// real DSL dispatch against an in-memory recorder and prints the exact
// titles that would be registered, so the output can never drift from the
// library's behavior.
func NewTitleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "title",
		Short: "Render the exact titles the DSL would register",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newTitleScenarioCmd())
	cmd.AddCommand(newTitleStepCmd())
	cmd.AddCommand(newTitleFeatureCmd())
	cmd.AddCommand(newTitleOutlineCmd())
	return cmd
}

// emitTitles prints the recorder's titles one per line, or as a JSON object
// when jsonMode is set.
func emitTitles(cmd *cobra.Command, rec *gwttest.Recorder, jsonMode bool) error {
	titles := rec.AllTitles()
	if jsonMode {
		if titles == nil {
			titles = []string{}
		}
		return json.NewEncoder(cmd.OutOrStdout()).Encode(titleOutput{Titles: titles})
	}
	for _, title := range titles {
		fmt.Fprintln(cmd.OutOrStdout(), title)
	}
	return nil
}

// newTitleScenarioCmd creates the "title scenario" subcommand.
func newTitleScenarioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "scenario <description>",
		Short:        "Render a scenario title, with optional tags and modifier",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			description := args[0]
			tags, _ := cmd.Flags().GetStringArray("tag")
			mode, _ := cmd.Flags().GetString("mode")
			jsonMode, _ := cmd.Flags().GetBool("json")

			rec := gwttest.NewRecorder()
			s := gwt.New(rec)
			body := func(_ context.Context) error { return nil }

			var err error
			switch mode {
			case "run":
				err = s.Scenario(description, body, gwt.Tags(tags...))
			case "skip":
				err = s.SkipScenario(description, body, gwt.Tags(tags...))
			case "only":
				err = s.OnlyScenario(description, body, gwt.Tags(tags...))
			case "todo":
				err = s.TodoScenario(description, gwt.Tags(tags...))
			default:
				return fmt.Errorf("unknown mode %q (want run, skip, only, or todo)", mode)
			}
			if err != nil {
				return fmt.Errorf("rendering scenario title: %w", err)
			}

			return emitTitles(cmd, rec, jsonMode)
		},
	}

	cmd.Flags().StringArray("tag", nil, "tag to append to the title (repeatable, order preserved)")
	cmd.Flags().String("mode", "run", "scenario modifier: run, skip, only, or todo")
	cmd.Flags().Bool("json", false, "output titles as a JSON object")

	return cmd
}

// stepRegistrars maps step keywords to their suite entry points.
func stepRegistrars(s *gwt.Suite) map[string]func(context.Context, string, gwt.StepFunc) error {
	return map[string]func(context.Context, string, gwt.StepFunc) error{
		"given": s.Given,
		"when":  s.When,
		"then":  s.Then,
		"and":   s.And,
		"but":   s.But,
	}
}

// newTitleStepCmd creates the "title step" subcommand.
func newTitleStepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "step <given|when|then|and|but> <description>",
		Short:        "Render a step title",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := strings.ToLower(args[0])
			description := args[1]
			jsonMode, _ := cmd.Flags().GetBool("json")

			rec := gwttest.NewRecorder()
			s := gwt.New(rec)

			register, ok := stepRegistrars(s)[keyword]
			if !ok {
				return fmt.Errorf("unknown step keyword %q (want given, when, then, and, or but)", args[0])
			}
			body := func(_ context.Context) error { return nil }
			if err := register(context.Background(), description, body); err != nil {
				return fmt.Errorf("rendering step title: %w", err)
			}

			return emitTitles(cmd, rec, jsonMode)
		},
	}

	cmd.Flags().Bool("json", false, "output titles as a JSON object")

	return cmd
}

// newTitleFeatureCmd creates the "title feature" subcommand.
func newTitleFeatureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "feature <description>",
		Short:        "Render a feature grouping title",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonMode, _ := cmd.Flags().GetBool("json")

			rec := gwttest.NewRecorder()
			s := gwt.New(rec)
			if err := s.Feature(args[0], func() {}); err != nil {
				return fmt.Errorf("rendering feature title: %w", err)
			}

			return emitTitles(cmd, rec, jsonMode)
		},
	}

	cmd.Flags().Bool("json", false, "output titles as a JSON object")

	return cmd
}

// parseExampleFlag parses one --example value of the form "a=1,b=2" into an
// ordered example record. Values stay strings; the title rendering is
// identical either way.
func parseExampleFlag(raw string) (gwt.Example, error) {
	var ex gwt.Example
	for _, part := range strings.Split(raw, ",") {
		name, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found || name == "" {
			return nil, fmt.Errorf("malformed example field %q (want name=value)", part)
		}
		ex = append(ex, gwt.Field{Name: name, Value: value})
	}
	return ex, nil
}

// newTitleOutlineCmd creates the "title outline" subcommand.
func newTitleOutlineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "outline <title>",
		Short:        "Render scenario-outline titles, one per example",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rawExamples, _ := cmd.Flags().GetStringArray("example")
			jsonMode, _ := cmd.Flags().GetBool("json")

			examples := make([]gwt.Example, 0, len(rawExamples))
			for _, raw := range rawExamples {
				ex, err := parseExampleFlag(raw)
				if err != nil {
					return err
				}
				examples = append(examples, ex)
			}

			rec := gwttest.NewRecorder()
			s := gwt.New(rec)
			body := func(_ context.Context, _ gwt.Example) error { return nil }
			if err := s.ScenarioOutline(args[0], examples, body); err != nil {
				return fmt.Errorf("rendering outline titles: %w", err)
			}

			return emitTitles(cmd, rec, jsonMode)
		},
	}

	cmd.Flags().StringArray("example", nil, `example record as "name=value,name=value" (repeatable, order preserved)`)
	cmd.Flags().Bool("json", false, "output titles as a JSON object")

	return cmd
}
