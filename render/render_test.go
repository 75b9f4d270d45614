package render

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/use-agent/brainhint/solver"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name       string
		outcome    solver.Outcome
		wantTitle  string
		wantLine   string
		wantDetail string
	}{
		{
			name:      "found",
			outcome:   solver.Outcome{Kind: solver.KindFound, Level: "42", Answer: "Move the rock"},
			wantTitle: "Brain Test Level 42",
			wantLine:  "Answer: Move the rock",
		},
		{
			name:      "not found",
			outcome:   solver.Outcome{Kind: solver.KindNotFound, Level: "123"},
			wantTitle: "Solution Not Found",
			wantLine:  "verify the level number",
		},
		{
			name:       "connection",
			outcome:    solver.Outcome{Kind: solver.KindTransportError, Level: "1", Category: solver.CategoryConnection, Detail: "dial tcp: refused"},
			wantTitle:  "Connection Error",
			wantLine:   "relay server is running",
			wantDetail: "dial tcp: refused",
		},
		{
			name:       "level not found",
			outcome:    solver.Outcome{Kind: solver.KindTransportError, Level: "9999", Category: solver.CategoryNotFound, Detail: "HTTP error! status: 404"},
			wantTitle:  "Level Not Found",
			wantLine:   "level 9999 was not found",
			wantDetail: "HTTP error! status: 404",
		},
		{
			name:      "server error",
			outcome:   solver.Outcome{Kind: solver.KindTransportError, Level: "2", Category: solver.CategoryServerError},
			wantTitle: "Server Error",
			wantLine:  "try again",
		},
		{
			name:      "generic",
			outcome:   solver.Outcome{Kind: solver.KindTransportError, Level: "8", Category: solver.CategoryGeneric},
			wantTitle: "Error",
			wantLine:  "level 8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Describe(tt.outcome)
			if m.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", m.Title, tt.wantTitle)
			}
			if body := strings.Join(m.Lines, "\n"); !strings.Contains(body, tt.wantLine) {
				t.Errorf("Lines = %q, want to contain %q", body, tt.wantLine)
			}
			if m.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, want %q", m.Detail, tt.wantDetail)
			}
		})
	}
}

func TestCard_ContainsTitleAndAnswer(t *testing.T) {
	card := Card(solver.Outcome{Kind: solver.KindFound, Level: "42", Answer: "Move the rock"})
	for _, want := range []string{"Brain Test Level 42", "Move the rock"} {
		if !strings.Contains(card, want) {
			t.Errorf("card %q does not contain %q", card, want)
		}
	}
}

func TestPlain(t *testing.T) {
	got := Plain(solver.Outcome{Kind: solver.KindTransportError, Level: "1", Category: solver.CategoryServerError, Detail: "HTTP error! status: 500"})
	want := "Server Error\nThe server encountered an error while fetching the solution. Please try again.\nError details: HTTP error! status: 500"
	if got != want {
		t.Errorf("Plain = %q, want %q", got, want)
	}
}

func TestDisplay_LastShowWins(t *testing.T) {
	var buf bytes.Buffer
	d := NewDisplay(&buf, true)

	if _, ok := d.Current(); ok {
		t.Fatal("new display should be empty")
	}

	// The older request answers last and replaces the newer one.
	d.Show(solver.Outcome{Kind: solver.KindFound, Level: "2", Answer: "newer"})
	d.Show(solver.Outcome{Kind: solver.KindFound, Level: "1", Answer: "older"})

	cur, ok := d.Current()
	if !ok || cur.Level != "1" || cur.Answer != "older" {
		t.Errorf("Current = %+v, want level 1 / older", cur)
	}
	if d.Shown() != 2 {
		t.Errorf("Shown = %d, want 2", d.Shown())
	}
	if !strings.Contains(buf.String(), "Answer: newer") || !strings.Contains(buf.String(), "Answer: older") {
		t.Errorf("output %q should contain both cards", buf.String())
	}
}

func TestDisplay_ConcurrentShow(t *testing.T) {
	var buf bytes.Buffer
	d := NewDisplay(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Loading("5")
			d.Show(solver.Outcome{Kind: solver.KindNotFound, Level: "5"})
		}()
	}
	wg.Wait()

	if d.Shown() != 20 {
		t.Errorf("Shown = %d, want 20", d.Shown())
	}
	if got := strings.Count(buf.String(), "Solution Not Found"); got != 20 {
		t.Errorf("rendered %d cards, want 20", got)
	}
}
