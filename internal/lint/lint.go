// Package lint checks rendered Gherkin-style test titles against naming
// conventions. It understands only the title grammar this repository's DSL
// produces (optional status marker, fixed keyword, description, optional
// " - Tags: " suffix) — it does not parse feature files.
package lint

import (
	"fmt"
	"strings"

	"github.com/eykd/gwt-go/internal/label"
)

// Code identifies a specific lint rule that was evaluated.
type Code string

const (
	// LNT001 indicates a committed [ONLY] focus marker.
	LNT001 Code = "LNT001"
	// LNT002 indicates a [SKIPPED] marker where skips are disallowed.
	LNT002 Code = "LNT002"
	// LNT003 indicates a [TODO] placeholder where todos are disallowed.
	LNT003 Code = "LNT003"
	// LNT004 indicates a scenario title with an empty description.
	LNT004 Code = "LNT004"
	// LNT005 indicates a title exceeding the configured maximum length.
	LNT005 Code = "LNT005"
	// LNT006 indicates a scenario missing a required tag.
	LNT006 Code = "LNT006"
	// LNT007 indicates a tag that does not start with the configured prefix.
	LNT007 Code = "LNT007"
)

// Severity classifies the impact level of a diagnostic.
type Severity string

const (
	// SeverityError indicates a condition that must be resolved.
	SeverityError Severity = "error"
	// SeverityWarning indicates a condition that should be reviewed.
	SeverityWarning Severity = "warning"
)

// Diagnostic is a single finding for one title line.
type Diagnostic struct {
	// Code is the rule identifier that produced this diagnostic.
	Code Code
	// Severity indicates whether this is an error or warning.
	Severity Severity
	// Message is a human-readable description of the finding.
	Message string
	// Line is the 1-based input line number the title came from.
	Line int
	// Title is the offending title text.
	Title string
}

// parsedTitle is the decomposition of one rendered title line into the
// grammar the DSL emits.
type parsedTitle struct {
	marker      string
	keyword     string
	description string
	tags        []string
}

// markers lists the status markers the DSL can prepend, including their
// trailing space.
var markers = []string{label.MarkerSkipped, label.MarkerOnly, label.MarkerTodo}

// keywords lists the fixed keywords in longest-first order so
// "Scenario Outline:" wins over "Scenario:".
var keywords = []string{
	label.Outline,
	label.Scenario,
	label.Feature,
	label.Given,
	label.When,
	label.Then,
	label.And,
	label.But,
}

// parseTitle splits a rendered title into marker, keyword, description, and
// tags. Unrecognized shapes come back with everything in the description.
func parseTitle(title string) parsedTitle {
	var p parsedTitle
	rest := title

	for _, m := range markers {
		if strings.HasPrefix(rest, m) {
			p.marker = strings.TrimSpace(m)
			rest = rest[len(m):]
			break
		}
	}

	for _, k := range keywords {
		if strings.HasPrefix(rest, k+" ") || rest == k {
			p.keyword = k
			rest = strings.TrimPrefix(strings.TrimPrefix(rest, k), " ")
			break
		}
	}

	if idx := strings.LastIndex(rest, " - Tags: "); idx >= 0 {
		p.tags = strings.Fields(rest[idx+len(" - Tags: "):])
		rest = rest[:idx]
	}

	p.description = rest
	return p
}

// isScenario reports whether the parsed title is a scenario or scenario
// outline registration.
func (p parsedTitle) isScenario() bool {
	return p.keyword == label.Scenario || p.keyword == label.Outline
}

// Check evaluates every rule against each title line. Blank lines are
// ignored. Diagnostics come back in line order, rule order within a line.
func Check(titles []string, cfg Config) []Diagnostic {
	var diags []Diagnostic
	for i, title := range titles {
		line := i + 1
		if strings.TrimSpace(title) == "" {
			continue
		}
		diags = append(diags, checkTitle(line, title, cfg)...)
	}
	return diags
}

// checkTitle evaluates every rule against a single title.
func checkTitle(line int, title string, cfg Config) []Diagnostic {
	var diags []Diagnostic
	add := func(code Code, severity Severity, format string, args ...any) {
		diags = append(diags, Diagnostic{
			Code:     code,
			Severity: severity,
			Message:  fmt.Sprintf(format, args...),
			Line:     line,
			Title:    title,
		})
	}

	p := parseTitle(title)

	if p.marker == strings.TrimSpace(label.MarkerOnly) && !cfg.AllowOnly {
		add(LNT001, SeverityError, "focused [ONLY] scenario must not be committed")
	}
	if p.marker == strings.TrimSpace(label.MarkerSkipped) && !cfg.AllowSkipped {
		add(LNT002, SeverityWarning, "skipped scenario present")
	}
	if p.marker == strings.TrimSpace(label.MarkerTodo) && !cfg.AllowTodo {
		add(LNT003, SeverityWarning, "todo placeholder present")
	}

	if p.isScenario() && strings.TrimSpace(p.description) == "" {
		add(LNT004, SeverityError, "scenario has an empty description")
	}

	if limit := cfg.MaxTitleLength; limit > 0 && len([]rune(title)) > limit {
		add(LNT005, SeverityWarning, "title is %d characters, limit is %d", len([]rune(title)), limit)
	}

	// Required tags apply only to plain scenarios: outlines cannot carry
	// tags in this title grammar, and steps/features never do.
	if p.keyword == label.Scenario {
		for _, required := range cfg.RequiredTags {
			if !containsTag(p.tags, required) {
				add(LNT006, SeverityError, "scenario is missing required tag %s", required)
			}
		}
	}

	if prefix := cfg.TagPrefix; prefix != "" {
		for _, tag := range p.tags {
			if !strings.HasPrefix(tag, prefix) {
				add(LNT007, SeverityWarning, "tag %q does not start with %q", tag, prefix)
			}
		}
	}

	return diags
}

// containsTag reports whether tags contains the exact tag.
func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
