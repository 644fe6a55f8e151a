// Command catalog_inspect validates the scenario catalog and prints it as tables.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"rangeiq/configs"
	"rangeiq/internal/catalog"
	"rangeiq/internal/domain"

	"github.com/pterm/pterm"
)

func main() {
	path := flag.String("path", "", "directory holding scenarios.json, ranges.json and concepts.json (defaults to the bundled seed)")
	rangeID := flag.Int("range", 0, "print the hand grid of this range id")
	flag.Parse()

	fsys := configs.SeedFS()
	source := "bundled seed"
	if *path != "" {
		fsys = os.DirFS(*path)
		source = *path
	}

	spinner, _ := pterm.DefaultSpinner.Start("Validating catalog from " + source + " ...")
	cat, err := catalog.Load(fsys)
	if err != nil {
		spinner.Fail(err.Error())
		os.Exit(1)
	}
	spinner.Success("Catalog is valid")

	printScenarios(cat.Scenarios(domain.ScenarioFilter{}))
	printRanges(cat.Ranges())
	printConcepts(cat.ConceptSummaries())

	if *rangeID != 0 {
		r, ok := cat.Range(*rangeID)
		if !ok {
			pterm.Error.Printfln("Range %d not found", *rangeID)
			os.Exit(1)
		}
		printRangeGrid(r)
	}
}

func printScenarios(scenarios []domain.Scenario) {
	pterm.DefaultSection.Println("Scenarios")
	data := pterm.TableData{{"ID", "Category", "Difficulty", "Hero", "Board", "Answer", "Delta", "Made hand"}}
	for _, s := range scenarios {
		data = append(data, []string{
			strconv.Itoa(s.ID),
			s.Category,
			s.Difficulty,
			formatCards(s.HeroCards),
			formatCards(s.BoardCards),
			pterm.LightGreen(s.CorrectAnswer),
			fmt.Sprintf("+%d / %d", s.RatingDelta.Correct, s.RatingDelta.Incorrect),
			s.MadeHand,
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Info.Printfln("%d scenarios", len(scenarios))
}

func printRanges(ranges []domain.Range) {
	pterm.DefaultSection.Println("Ranges")
	data := pterm.TableData{{"ID", "Title", "Position", "Action", "Depth", "Hands", "Combos"}}
	for _, r := range ranges {
		combos := domain.RangeCombos(r.Hands)
		data = append(data, []string{
			strconv.Itoa(r.ID),
			r.Title,
			r.Position,
			r.Action,
			strconv.Itoa(r.StackDepth) + "bb",
			strconv.Itoa(len(r.Hands)),
			fmt.Sprintf("%d (%.1f%%)", combos, float64(combos)*100/domain.TotalCombos),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printConcepts(concepts []domain.ConceptSummary) {
	pterm.DefaultSection.Println("Concepts")
	data := pterm.TableData{{"ID", "Title", "Category", "Difficulty"}}
	for _, c := range concepts {
		data = append(data, []string{c.ID, c.Title, c.Category, c.Difficulty})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// printRangeGrid renders the 13x13 hand grid with the range's hands highlighted.
func printRangeGrid(r domain.Range) {
	in := make(map[string]bool, len(r.Hands))
	for _, h := range r.Hands {
		in[h] = true
	}

	pterm.DefaultSection.Printfln("%s (%s %s)", r.Title, r.Position, r.Action)
	var b strings.Builder
	for row := 0; row < domain.GridSize; row++ {
		for col := 0; col < domain.GridSize; col++ {
			label := fmt.Sprintf("%-4s", domain.GridLabel(row, col))
			if in[domain.GridLabel(row, col)] {
				b.WriteString(pterm.BgGreen.Sprint(label))
			} else {
				b.WriteString(pterm.FgDarkGray.Sprint(label))
			}
		}
		b.WriteString("\n")
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(2).WithTopPadding(1).WithBottomPadding(1)
	pbox.WithTitle(pterm.LightYellow(fmt.Sprintf("|%d combos|", domain.RangeCombos(r.Hands)))).WithTitleTopCenter().Println(b.String())
}

func formatCards(cards []string) string {
	if len(cards) == 0 {
		return "-"
	}
	out := make([]string, len(cards))
	for i, c := range cards {
		if len(c) == 2 && (c[1] == 'h' || c[1] == 'd') {
			out[i] = pterm.LightRed(c)
		} else {
			out[i] = c
		}
	}
	return strings.Join(out, " ")
}
