// Command lazybrowse is an interactive browser over a synthetic collection.
// Only the rows the tracker asks for are ever generated; watch the footer's
// window and held counts move as you scroll. Quit and relaunch with -start to
// resume where you left off.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"lazykit"
)

type row struct {
	ID    string
	Title string
}

// countingLoader synthesizes rows on demand and keeps fetch statistics.
type countingLoader struct {
	calls  int
	served int
}

func (c *countingLoader) Load(r lazykit.Range) []row {
	c.calls++
	c.served += r.Len()
	out := make([]row, 0, r.Len())
	for i := r.Begin; i < r.End; i++ {
		out = append(out, row{
			ID:    uuid.NewString(),
			Title: fmt.Sprintf("record %06d", i),
		})
	}
	return out
}

// browser adds a random-jump key and a help line around a TermList.
type browser struct {
	list  *lazykit.TermList[row]
	count int
}

func (b browser) Init() tea.Cmd { return b.list.Init() }

func (b browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		msg.Height-- // keep a row for the help line
		_, cmd := b.list.Update(msg)
		return b, cmd
	case tea.KeyMsg:
		if msg.String() == "r" && b.count > 0 {
			b.list.JumpTo(rand.Intn(b.count), false)
			return b, nil
		}
	}
	_, cmd := b.list.Update(msg)
	return b, cmd
}

func (b browser) View() string {
	return b.list.View() + "\n j/k move   f/b page   g/G ends   r random jump   q quit"
}

func main() {
	count := flag.Int("n", 50_000, "collection size")
	start := flag.Int("start", -1, "resume at this first visible index")
	flag.Parse()

	loader := &countingLoader{}
	list := lazykit.NewTermList(*count, loader.Load, func(item row, index int, selected bool) string {
		return fmt.Sprintf("%s  %s", item.ID[:8], item.Title)
	}).StartAt(*start)

	if _, err := tea.NewProgram(browser{list: list, count: *count}, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}

	pos := lazykit.Serialize(list.List().Tracker())
	fmt.Printf("stopped at %d; resume with -start %d\n", pos, pos)
	fmt.Printf("loader calls: %d, rows generated: %d of %d\n", loader.calls, loader.served, *count)
}
