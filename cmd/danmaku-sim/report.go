package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/danmaku/loop"
	"github.com/plus3/danmaku/world"
)

type Report struct {
	// Configuration
	RunID     string
	Stage     string
	Simulated time.Duration
	FPS       int
	Pilot     bool

	// Results
	Ticks       int64
	WallTime    time.Duration
	DrawCalls   int
	World       world.Stats
	Loop        *loop.LoopStats
	PeakBullets int
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Simulation Report

## Run
- **Run ID:** {{.RunID}}
- **Stage:** {{.Stage}}
- **Simulated Time:** {{.Simulated}} at {{.FPS}} FPS
- **Pilot:** {{.Pilot}}

## Results
- **Ticks:** {{.Ticks}}
- **Wall Time:** {{.WallTime}}
- **Draw Calls (last frame):** {{.DrawCalls}}
- **Bullets Spawned:** {{.World.Spawned}}
- **Peak Live Bullets:** {{.PeakBullets}}
- **Score:** {{.World.Score}}
- **Player Health:** {{.World.Health}}

## Pools
| Pool | Capacity | In Use | Free | High Water | Exhaustions |
|------|----------|--------|------|------------|-------------|
{{- range pools .World}}
| {{.Name}} | {{.Capacity}} | {{.InUse}} | {{.Free}} | {{.HighWater}} | {{.Exhaustions}} |
{{- end}}

## Phases
| Phase | Count | Avg | Min | Max |
|-------|-------|-----|-----|-----|
{{- range .Loop.Phases}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}
`

	fm := template.FuncMap{
		"pools": func(s world.Stats) []any {
			return []any{s.Bullets, s.Enemies}
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
