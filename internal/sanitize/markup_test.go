package sanitize

import "testing"

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "Clear and direct.", want: "Clear and direct."},
		{name: "div-wrapped", input: "<div style=\"color:red\">Too technical</div>", want: "Too technical"},
		{name: "entities", input: "Uses &nbsp;jargon &amp; acronyms", want: "Uses jargon  acronyms"},
		{name: "numeric-entity-kept", input: "score &#62; 0.8", want: "score &#62; 0.8"},
		{name: "surrounding-space", input: "  <p>ok</p>  ", want: "ok"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkup(tt.input); got != tt.want {
				t.Fatalf("StripMarkup() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripMarkupPtr(t *testing.T) {
	if StripMarkupPtr(nil) != nil {
		t.Fatalf("expected nil")
	}
	in := "<b>fix</b>"
	if got := StripMarkupPtr(&in); got == nil || *got != "fix" {
		t.Fatalf("unexpected result %v", got)
	}
}
