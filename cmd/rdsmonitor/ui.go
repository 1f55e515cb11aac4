package main

import (
	"fmt"

	"github.com/gdamore/tcell"
)

// Display owns the tcell screen and the fixed layout of the tuner screen:
// a big frequency readout, a medium callsign/program-name block, RadioText
// with a static marquee line, and a status line. It turns the strings rds.Station already
// computed for us into the FIGfont-rendered, centered blocks the teacher's
// gofm.go used to lay out by hand in the event loop.
type Display struct {
	scr    tcell.Screen
	big    *FIGfont
	medium *FIGfont

	freqStyle tcell.Style
	callStyle tcell.Style

	bigHeight, medHeight int
}

// NewDisplay wraps an already-initialized screen. big/medium may be nil,
// in which case the corresponding blocks fall back to a single plain-text
// line (see renderLines).
func NewDisplay(scr tcell.Screen, big, medium *FIGfont) *Display {
	black := tcell.Color(int32(232))
	white := tcell.Color(int32(255))

	bigHeight, medHeight := 1, 1
	if big != nil {
		bigHeight = big.Height
	}
	if medium != nil {
		medHeight = medium.Height
	}

	return &Display{
		scr:       scr,
		big:       big,
		medium:    medium,
		freqStyle: tcell.StyleDefault.Foreground(white).Background(black).Bold(true),
		callStyle: tcell.StyleDefault,
		bigHeight: bigHeight,
		medHeight: medHeight,
	}
}

// clear fills a rectangle with c under style.
func (d *Display) clear(x, y, h, w int, c rune, style tcell.Style) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			d.scr.SetContent(i, j, c, nil, style)
		}
	}
}

// drawLines writes lines starting at (x, y), one row per line.
func (d *Display) drawLines(x, y int, style tcell.Style, lines []string) {
	for j, line := range lines {
		for i, c := range line {
			d.scr.SetContent(x+i, y+j, c, nil, style)
		}
	}
}

// centerX returns the x offset that centers a string of the given width
// across the current screen width.
func (d *Display) centerX(width int) int {
	w, _ := d.scr.Size()
	return (w - width) / 2
}

// DrawFrequency renders the tuned frequency in the big font, centered.
func (d *Display) DrawFrequency(channel float64) {
	lines := renderLines(d.big, fmt.Sprintf("%.1f", channel))
	w, _ := d.scr.Size()
	d.clear((w-60)/2, 4, d.bigHeight+1, 60, ' ', d.freqStyle)
	d.drawLines(d.centerX(len(lines[0])), 2, d.freqStyle, lines)
}

// DrawCallsign renders a station's callsign in the medium font, and the
// program type name directly beneath it, both centered.
func (d *Display) DrawCallsign(callsign, progName string) {
	lines := renderLines(d.medium, callsign)
	w, _ := d.scr.Size()
	d.clear((w-50)/2, 18, d.medHeight, 50, ' ', d.callStyle)
	d.drawLines(d.centerX(len(lines[0])), 15, d.callStyle, lines)
	d.drawLines(d.centerX(len(progName)), 22, d.callStyle, []string{progName})
}

// DrawProgramName renders RadioText in the medium font below the callsign
// block, plus a static (non-scrolling) marquee line and the parenthesized Program
// Service name beneath that.
func (d *Display) DrawProgramName(radioText, programService string) {
	lines := renderLines(d.medium, radioText)
	w, _ := d.scr.Size()
	d.clear(0, 24, d.medHeight, w, ' ', d.callStyle)
	d.drawLines(0, 24, d.callStyle, lines)

	marquee := "- - - = = =  " + radioText + "  = = = - - -"
	d.clear(0, 33, 1, w, ' ', d.callStyle)
	d.drawLines(d.centerX(len(marquee)), 33, d.callStyle, []string{marquee})

	d.drawLines(d.centerX(len(programService)), 34, d.callStyle, []string{"(" + programService + ")"})
}

// DrawStatusLine renders the one-line summary across the top of the
// screen: tuned/actual frequency, callsign, RSSI, stereo/RDS/traffic
// flags.
func (d *Display) DrawStatusLine(channel, actual float64, callsign string, rssi int, stereo string, rdsr, traffic rune) {
	status := fmt.Sprintf("%.1f (%.1f)  %-4.4s  %3d  %s  %c  %c",
		channel, actual, callsign, rssi, stereo, rdsr, traffic)
	w, _ := d.scr.Size()
	d.clear(0, 0, 1, w, ' ', d.callStyle)
	d.drawLines(0, 0, d.callStyle, []string{status})
}

// Show flushes pending draws to the terminal.
func (d *Display) Show() {
	d.scr.Show()
}
