package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beat-judge/audio"
	"github.com/lixenwraith/beat-judge/combo"
	"github.com/lixenwraith/beat-judge/core"
	"github.com/lixenwraith/beat-judge/status"
)

var (
	styleBase    = tcell.StyleDefault
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBeat    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleFailure = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

var accuracyStyles = [core.AccuracyCount]tcell.Style{
	core.AccuracyPerfect: tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	core.AccuracyRegular: tcell.StyleDefault.Foreground(tcell.ColorAqua),
	core.AccuracyGoofy:   tcell.StyleDefault.Foreground(tcell.ColorOrange),
	core.AccuracyMiss:    tcell.StyleDefault.Foreground(tcell.ColorRed),
}

// hudState is everything one frame draws
type hudState struct {
	View      status.View
	BarLength int
	Buffered  combo.Sequence
	Filled    int
	Mode      audio.Mode
	BPM       int
	Dropped   uint64
}

// beatLine marks the current position inside the bar
func beatLine(inBar, barLength int) string {
	var b strings.Builder
	for i := 0; i < barLength; i++ {
		if i == inBar {
			b.WriteString("[#]")
		} else {
			b.WriteString("[ ]")
		}
	}
	return b.String()
}

// bufferLine shows collected keys with open slots as underscores
func bufferLine(seq combo.Sequence, filled int) string {
	parts := make([]string, len(seq))
	for i := range seq {
		if i < filled {
			parts[i] = seq[i].String()
		} else {
			parts[i] = "__"
		}
	}
	return strings.Join(parts, " ")
}

func comboLine(v status.View) string {
	return fmt.Sprintf("combo %d  x%.2f  best %d  peak x%.2f", v.Count, v.Multiplier, v.Best, v.PeakMultiplier)
}

func hitsLine(v status.View) string {
	parts := make([]string, 0, core.AccuracyCount)
	for a := core.AccuracyPerfect; a < core.AccuracyCount; a++ {
		parts = append(parts, fmt.Sprintf("%s %d", a, v.Hits[a]))
	}
	return strings.Join(parts, "  ")
}

func audioLine(mode audio.Mode, bpm int, dropped uint64) string {
	line := fmt.Sprintf("%d bpm  audio %s", bpm, mode)
	if dropped > 0 {
		line += fmt.Sprintf("  dropped %d", dropped)
	}
	return line
}

// drawText writes s at (x, y), clipped to the screen width
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	w, h := s.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range text {
		if x >= w {
			break
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}

func drawHUD(s tcell.Screen, st hudState) {
	s.Clear()
	v := st.View

	y := 1
	drawText(s, 2, y, "beat-judge", styleBase.Bold(true))
	drawText(s, 16, y, audioLine(st.Mode, st.BPM, st.Dropped), styleDim)

	y += 2
	drawText(s, 2, y, beatLine(v.InBar, st.BarLength), styleBeat)
	drawText(s, 4+3*st.BarLength, y, fmt.Sprintf("beat %d", v.BeatIndex), styleDim)

	y += 2
	drawText(s, 2, y, bufferLine(st.Buffered, st.Filled), styleBase)

	y += 2
	x := drawText(s, 2, y, "last ", styleDim)
	if v.HasAccuracy {
		drawText(s, x, y, v.LastAccuracy.String(), accuracyStyles[v.LastAccuracy])
	}

	y++
	drawText(s, 2, y, comboLine(v), styleBase)

	y++
	if v.LastCombo != "" {
		drawText(s, 2, y, "resolved "+v.LastCombo, styleBase)
	}
	y++
	if v.LastFailure != "" {
		drawText(s, 2, y, "failed: "+v.LastFailure, styleFailure)
	}

	y += 2
	drawText(s, 2, y, hitsLine(v), styleDim)

	y += 2
	drawText(s, 2, y, "arrows/wasd drums  enter/space close  esc quit", styleDim)

	s.Show()
}
