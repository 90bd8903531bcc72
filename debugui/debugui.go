// Package debugui draws a Dear ImGui overlay with pool occupancy, tick phase
// timings and per-enemy hit counts.
package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/danmaku/loop"
	"github.com/plus3/danmaku/pool"
	"github.com/plus3/danmaku/world"
)

// EnemyInfo is one row of the stage window.
type EnemyInfo struct {
	Handle pool.Handle
	X, Y   float64
	Hits   int
}

// Snapshot is everything the overlay shows for one frame.
type Snapshot struct {
	World   world.Stats
	Loop    *loop.LoopStats
	Enemies []EnemyInfo
}

// Collect gathers a snapshot from a manager and the loop driving it.
func Collect(m *world.Manager, l *loop.Loop) Snapshot {
	s := Snapshot{
		World: m.Stats(),
		Loop:  l.Stats(),
	}
	for h, e := range m.Enemies() {
		s.Enemies = append(s.Enemies, EnemyInfo{
			Handle: h,
			X:      e.Shape.Center.X,
			Y:      e.Shape.Center.Y,
			Hits:   e.Hits,
		})
	}
	return s
}

// Overlay keeps the frame-time history between frames.
type Overlay struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewOverlay keeps a frame-time history of historyFrames samples, which must
// be positive.
func NewOverlay(historyFrames int) *Overlay {
	if historyFrames <= 0 {
		panic("debugui: history must hold at least one frame")
	}
	return &Overlay{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Render emits the overlay windows. It must be called between the ImGui
// backend's BeginFrame and EndFrame.
func (o *Overlay) Render(s Snapshot, deltaTime float32) {
	o.frameHistory[o.frameIndex] = deltaTime * 1000.0
	o.frameIndex = (o.frameIndex + 1) % o.historyFrames

	o.renderPools(s.World)
	o.renderPhases(s.Loop)
	o.renderStage(s)
}

func (o *Overlay) renderPools(ws world.Stats) {
	if !imgui.BeginV("Pools", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Bullets spawned: %d", ws.Spawned))
	imgui.Text(fmt.Sprintf("Live: %d player, %d enemy", ws.PlayerBullets, ws.EnemyBullets))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("PoolTable", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Pool")
		imgui.TableSetupColumn("Capacity")
		imgui.TableSetupColumn("In Use")
		imgui.TableSetupColumn("Free")
		imgui.TableSetupColumn("High Water")
		imgui.TableSetupColumn("Exhaustions")
		imgui.TableHeadersRow()

		for _, ps := range []pool.Stats{ws.Bullets, ws.Enemies} {
			imgui.TableNextRow()
			for _, cell := range []string{
				ps.Name,
				fmt.Sprintf("%d", ps.Capacity),
				fmt.Sprintf("%d", ps.InUse),
				fmt.Sprintf("%d", ps.Free),
				fmt.Sprintf("%d", ps.HighWater),
				fmt.Sprintf("%d", ps.Exhaustions),
			} {
				imgui.TableNextColumn()
				imgui.Text(cell)
			}
		}
		imgui.EndTable()
	}

	imgui.End()
}

func (o *Overlay) renderPhases(ls *loop.LoopStats) {
	if !imgui.BeginV("Phases", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	var avgFrameTime float32
	for _, ft := range o.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(o.historyFrames)

	imgui.Text(fmt.Sprintf("Ticks: %d  Overruns: %d  Lag: %s", ls.Ticks, ls.Overruns, ls.Lag))
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &o.frameHistory[0], int32(len(o.frameHistory)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("PhaseTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Phase")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, ph := range ls.Phases {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(ph.Name)
			imgui.TableNextColumn()
			imgui.Text(ph.LastDuration.String())
			imgui.TableNextColumn()
			imgui.Text(ph.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(ph.MaxDuration.String())
		}
		imgui.EndTable()
	}

	imgui.End()
}

func (o *Overlay) renderStage(s Snapshot) {
	if !imgui.BeginV("Stage", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Score: %d  Health: %d", s.World.Score, s.World.Health))
	if imgui.TreeNodeStr("Enemies") {
		for _, e := range s.Enemies {
			imgui.BulletText(fmt.Sprintf("0x%X at (%.0f, %.0f): %d hits", uint64(e.Handle), e.X, e.Y, e.Hits))
		}
		imgui.TreePop()
	}

	imgui.End()
}
