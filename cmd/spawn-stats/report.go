package main

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/plus3/tetromino/tetris"
)

type Report struct {
	// Configuration
	Draws     int
	Seed      uint64
	Tolerance float64

	// Results
	Elapsed      time.Duration
	Kinds        []KindStats
	MaxDeviation float64
}

type KindStats struct {
	Kind      tetris.Kind
	Color     tetris.Color
	Count     int
	Frequency float64
	Deviation float64
}

func NewReport(tally *tetris.Tally, seed uint64, tolerance float64, elapsed time.Duration) *Report {
	r := &Report{
		Draws:        tally.Total(),
		Seed:         seed,
		Tolerance:    tolerance,
		Elapsed:      elapsed,
		MaxDeviation: tally.MaxDeviation(),
	}

	const expected = 1.0 / tetris.KindCount
	for _, t := range tetris.Catalogue() {
		freq := tally.Frequency(t.Kind)
		r.Kinds = append(r.Kinds, KindStats{
			Kind:      t.Kind,
			Color:     t.Color,
			Count:     tally.Count(t.Kind),
			Frequency: freq,
			Deviation: (freq - expected) / expected,
		})
	}
	return r
}

func (r *Report) Passed() bool {
	return r.MaxDeviation <= r.Tolerance
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Spawn Distribution Report

## Configuration
- **Draws:** {{.Draws}}
- **Seed:** {{if .Seed}}{{.Seed}}{{else}}process-wide{{end}}
- **Tolerance:** {{pct .Tolerance}}

## Results
- **Elapsed:** {{.Elapsed}}
- **Max Deviation:** {{pct .MaxDeviation}}
- **Status:** {{if .Passed}}PASS{{else}}FAIL{{end}}

| Kind | Color | Count | Frequency | Deviation |
|---|---|---|---|---|
{{- range .Kinds}}
| {{.Kind}} | {{.Color}} | {{.Count}} | {{pct .Frequency}} | {{delta .Deviation}} |
{{- end}}
`

	fm := template.FuncMap{
		"pct": func(v float64) string {
			return fmt.Sprintf("%.2f%%", v*100)
		},
		"delta": func(v float64) string {
			return fmt.Sprintf("%+.2f%%", v*100)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
