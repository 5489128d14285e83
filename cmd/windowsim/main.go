// Command windowsim replays a scripted scroll session against a window tracker
// and prints what each step loads and evicts. No terminal UI is involved; the
// point is to watch the load range react to scroll direction, pauses, and jumps.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"lazykit"
)

const itemCount = 1000

var (
	title  = lipgloss.NewStyle().Bold(true)
	dim    = lipgloss.NewStyle().Faint(true)
	loaded = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	gone   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type step struct {
	name   string
	action func(t *lazykit.WindowTracker)
}

func main() {
	width := 72
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = min(w, 100)
	}
	rule := dim.Render(strings.Repeat("─", width))

	steps := []step{
		{"fresh load", func(t *lazykit.WindowTracker) {}},
		{"settle", func(t *lazykit.WindowTracker) {}},
		{"drag down", func(t *lazykit.WindowTracker) { t.OnUserScroll(5, 20) }},
		{"drag down", func(t *lazykit.WindowTracker) { t.OnUserScroll(15, 30) }},
		{"drag down", func(t *lazykit.WindowTracker) { t.OnUserScroll(30, 45) }},
		{"pause", func(t *lazykit.WindowTracker) { t.OnUserScroll(30, 45) }},
		{"flick up", func(t *lazykit.WindowTracker) { t.OnUserScroll(20, 35) }},
		{"flick up", func(t *lazykit.WindowTracker) { t.OnUserScroll(8, 23) }},
		{"jump to 600", func(t *lazykit.WindowTracker) {
			if err := t.ProgrammaticScroll(600, false, true); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}},
		{"view catches up", func(t *lazykit.WindowTracker) { t.OnUserScroll(600, 615) }},
		{"stop", func(t *lazykit.WindowTracker) { t.OnUserScroll(600, 615) }},
	}

	tracker := lazykit.NewWindowTracker()
	fmt.Println(title.Render("window tracker simulation") + dim.Render(fmt.Sprintf("  (%d items)", itemCount)))
	fmt.Println(rule)

	prev := lazykit.Range{}
	seen := 0
	for _, s := range steps {
		s.action(tracker)
		rng := tracker.LoadRange(itemCount)

		overlap := prev.Intersect(rng)
		fetched := rng.Len() - overlap.Len()
		evicted := prev.Len() - overlap.Len()

		deltas := loaded.Render(fmt.Sprintf("+%d", fetched)) + " " + gone.Render(fmt.Sprintf("-%d", evicted))
		fmt.Printf("%s  visible %-11s load %-11s %s\n",
			title.Render(fmt.Sprintf("%-16s", s.name)), tracker.Visible(), rng, deltas)

		// Surface each scroll request once, the way a view would consume it.
		if req := tracker.PendingScroll(); req.ID != seen {
			seen = req.ID
			fmt.Printf("%-16s  %s\n", "", dim.Render(fmt.Sprintf("scroll request #%d -> index %d", req.ID, req.Index)))
		}
		prev = rng
	}

	fmt.Println(rule)
	pos := lazykit.Serialize(tracker)
	restored := lazykit.Restore(pos)
	req := restored.PendingScroll()
	fmt.Printf("serialized position %d; restore issues request #%d for index %d, first load %s\n",
		pos, req.ID, req.Index, restored.LoadRange(itemCount))
}
