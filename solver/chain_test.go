package solver

import (
	"errors"
	"reflect"
	"testing"
)

// primaryPage wraps answer in the walkthrough site's structural path.
func primaryPage(answer string) string {
	return `<html><body>
<header><strong>Brain Test Answers</strong></header>
<main><section class="cr-post-content"><div><div><div><div>
<blockquote><p><strong>` + answer + `</strong></p></blockquote>
</div></div></div></div></section></main>
</body></html>`
}

func TestChain_Order(t *testing.T) {
	want := []string{
		PrimarySelector,
		"blockquote p strong",
		"blockquote strong",
		".answer strong",
		"strong",
	}
	if got := Chain(); !reflect.DeepEqual(got, want) {
		t.Errorf("Chain() = %v, want %v", got, want)
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name         string
		html         string
		wantOK       bool
		wantText     string
		wantSelector string
	}{
		{
			name:         "primary path wins over earlier strong",
			html:         primaryPage("  Move the rock \n"),
			wantOK:       true,
			wantText:     "Move the rock",
			wantSelector: PrimarySelector,
		},
		{
			name:         "nested inline markup is flattened",
			html:         primaryPage("Move <em>the</em> rock"),
			wantOK:       true,
			wantText:     "Move the rock",
			wantSelector: PrimarySelector,
		},
		{
			name:         "blockquote p strong outside the primary path",
			html:         `<div class="answer"><strong>Tap twice</strong></div><blockquote><p><strong>Drag the sun</strong></p></blockquote>`,
			wantOK:       true,
			wantText:     "Drag the sun",
			wantSelector: "blockquote p strong",
		},
		{
			name:         "blockquote strong without paragraph",
			html:         `<strong>Menu</strong><blockquote><strong>Shake the phone</strong></blockquote>`,
			wantOK:       true,
			wantText:     "Shake the phone",
			wantSelector: "blockquote strong",
		},
		{
			name:         "answer class",
			html:         `<p>intro</p><div class="answer"><span><strong>Zoom out</strong></span></div><strong>Later</strong>`,
			wantOK:       true,
			wantText:     "Zoom out",
			wantSelector: ".answer strong",
		},
		{
			name:         "any strong",
			html:         `<article><p>The answer is <strong>Turn it off</strong>.</p></article>`,
			wantOK:       true,
			wantText:     "Turn it off",
			wantSelector: "strong",
		},
		{
			name:         "malformed html still parses",
			html:         `<div><blockquote><p><strong>Unclosed answer`,
			wantOK:       true,
			wantText:     "Unclosed answer",
			wantSelector: "blockquote p strong",
		},
		{
			name:   "no strong anywhere",
			html:   `<html><body><p>Nothing here</p></body></html>`,
			wantOK: false,
		},
		{
			name:   "only whitespace strong",
			html:   "<main><blockquote><p><strong>  \n\t </strong></p></blockquote></main>",
			wantOK: false,
		},
		{
			name:   "empty input",
			html:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(ParseDocument(tt.html))
			if ok != tt.wantOK {
				t.Fatalf("Extract ok = %v, want %v (match %+v)", ok, tt.wantOK, got)
			}
			if !ok {
				return
			}
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
			if got.Selector != tt.wantSelector {
				t.Errorf("Selector = %q, want %q", got.Selector, tt.wantSelector)
			}
		})
	}
}

func TestTargetURL(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"42", "https://dazepuzzle.com/brain-test-level-42/"},
		{"abc", "https://dazepuzzle.com/brain-test-level-abc/"},
	}
	for _, tt := range tests {
		if got := TargetURL(DefaultTargetBase, tt.level); got != tt.want {
			t.Errorf("TargetURL(%q) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestValidateTargetBase(t *testing.T) {
	tests := []struct {
		base    string
		wantErr bool
	}{
		{DefaultTargetBase, false},
		{"http://127.0.0.1:8080/level-%s", false},
		{"https://example.test/100%%/level-%s/", false},
		{"https://example.test/level/", true},
		{"https://example.test/%s/%s/", true},
		{"https://example.test/level-%d/", true},
		{"https://example.test/a%20b/level-%s/", true},
		{"", true},
	}
	for _, tt := range tests {
		err := ValidateTargetBase(tt.base)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateTargetBase(%q) = %v, wantErr %v", tt.base, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrTargetBase) {
			t.Errorf("ValidateTargetBase(%q) = %v, want ErrTargetBase", tt.base, err)
		}
	}
}

func TestProxyURL(t *testing.T) {
	got := ProxyURL("http://localhost:3000/", "https://dazepuzzle.com/brain-test-level-1/?a=b&c")
	want := "http://localhost:3000/api/proxy?url=https%3A%2F%2Fdazepuzzle.com%2Fbrain-test-level-1%2F%3Fa%3Db%26c"
	if got != want {
		t.Errorf("ProxyURL = %q, want %q", got, want)
	}
}
