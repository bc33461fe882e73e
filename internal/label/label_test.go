package label

import "testing"

func TestCompose_TrimsDescriptionWhitespace(t *testing.T) {
	tests := []struct {
		name        string
		keyword     string
		description string
		want        string
	}{
		{"leading and trailing spaces", Given, "  the user is logged in ", "Given the user is logged in"},
		{"tabs and newlines", When, "\tthe form is submitted\n", "When the form is submitted"},
		{"no surrounding whitespace", Then, "the dashboard appears", "Then the dashboard appears"},
		{"internal whitespace preserved", And, "a  double  spaced  phrase", "And a  double  spaced  phrase"},
		{"empty description", But, "", "But "},
		{"whitespace-only description", Given, "   ", "Given "},
		{"scenario keyword keeps colon", Scenario, " User logs in ", "Scenario: User logs in"},
		{"feature keyword keeps colon", Feature, "Authentication", "Feature: Authentication"},
		{"outline keyword", Outline, "addition", "Scenario Outline: addition"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.keyword, tt.description)
			if got != tt.want {
				t.Errorf("Compose(%q, %q) = %q, want %q", tt.keyword, tt.description, got, tt.want)
			}
		})
	}
}

func TestCompose_IsDeterministic(t *testing.T) {
	first := Compose(Given, "  a precondition  ")
	second := Compose(Given, "  a precondition  ")
	if first != second {
		t.Errorf("two identical calls produced %q and %q", first, second)
	}
}

func TestTagSuffix(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want string
	}{
		{"nil tags", nil, ""},
		{"empty tags", []string{}, ""},
		{"single tag", []string{"@smoke"}, " - Tags: @smoke"},
		{"multiple tags in given order", []string{"@smoke", "@auth"}, " - Tags: @smoke @auth"},
		{"order is preserved, not sorted", []string{"@z", "@a"}, " - Tags: @z @a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TagSuffix(tt.tags)
			if got != tt.want {
				t.Errorf("TagSuffix(%v) = %q, want %q", tt.tags, got, tt.want)
			}
		})
	}
}
