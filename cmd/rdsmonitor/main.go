// Command rdsmonitor drives a Si4703 FM tuner over I2C and displays its
// RDS output on a terminal UI. The chip itself performs block
// synchronization and burst-error correction in hardware; this program
// only has to turn its RDSA..RDSD registers into a Group and hand it to
// the rds package's dispatcher (spec §6, pre-framed input mode).
package main

import (
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell"
	"github.com/hashicorp/logutils"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/pin/pinreg"

	"periph.io/x/host/v3"
	"periph.io/x/host/v3/rpi"

	"github.com/openwebrx/redsea-go/rds"
)

var i2cAddr = 0x10

func main() {
	log.SetOutput(&logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "WARN", "ERROR"},
		MinLevel: logutils.LogLevel(envOr("RDSMONITOR_LOG_LEVEL", "INFO")),
		Writer:   os.Stderr,
	})

	big, medium := loadFonts()

	scr, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("[ERROR] couldn't open screen: %v", err)
	}
	if err = scr.Init(); err != nil {
		log.Fatalf("[ERROR] couldn't init screen: %v", err)
	}
	defer scr.Fini()
	scr.Clear()

	if _, err = host.Init(); err != nil {
		log.Fatalf("[ERROR] couldn't initialize peripherals: %v", err)
	}

	bus, err := i2creg.Open("I2C1")
	if err != nil {
		log.Fatalf("[ERROR] couldn't initialize i2c bus: %v", err)
	}

	if p, ok := bus.(i2c.Pins); ok {
		_, sclPin := pinreg.Position(p.SCL())
		_, sdaPin := pinreg.Position(p.SDA())
		log.Printf("[INFO] using i2c %q  scl=pin%d sda=pin%d", bus, sclPin, sdaPin)
	}

	log.Printf("[INFO] resetting tuner")
	rpi.P1_16.Out(gpio.Low)
	time.Sleep(100 * time.Millisecond)
	rpi.P1_16.Out(gpio.High)
	time.Sleep(100 * time.Millisecond)

	s, _ := NewSi4703(bus, uint16(i2cAddr))

	s.SetOsc(true)
	s.Set(POWERCFG, 0x4001) // DMUTE | ENABLE
	time.Sleep(100 * time.Millisecond)
	s.Read()

	tmp := s.Reg[SYSCONFIG1]
	tmp |= 1 << 12 // enable RDS
	s.Set(SYSCONFIG1, tmp)
	s.Set(SYSCONFIG2, 0)
	s.Set(SYSCONFIG3, 0x0100)
	time.Sleep(100 * time.Millisecond)
	s.Read()

	channel := 88.5
	s.SetChannel(channel)
	s.Set(SYSCONFIG2, 15) // volume to max

	run(scr, s, big, medium, channel)
}

func loadFonts() (big, medium *FIGfont) {
	var err error
	big, err = openFont("univers.flf")
	if err != nil {
		log.Printf("[WARN] couldn't load display font univers.flf: %v (falling back to plain text)", err)
	}
	medium, err = openFont("nancyj-improved.flf")
	if err != nil {
		log.Printf("[WARN] couldn't load display font nancyj-improved.flf: %v (falling back to plain text)", err)
	}
	return big, medium
}

func openFont(path string) (*FIGfont, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return NewFIGfont(r)
}

// renderLines is a FIGfont.Render that degrades gracefully to a single
// plain-text line when no font loaded.
func renderLines(f *FIGfont, s string) []string {
	if f == nil {
		return []string{s}
	}
	return f.Render(s)
}

func run(scr tcell.Screen, s *Si4703, big, medium *FIGfont, channel float64) {
	disp := NewDisplay(scr, big, medium)
	dispatcher := rds.NewDispatcher(nil)

	scr.Clear()
	scr.EnableMouse()
	events := make(chan tcell.Event, 1)
	go func() {
		for {
			events <- scr.PollEvent()
		}
	}()

	var station *rds.Station

evtloop:
	for {
		select {
		case e := <-events:
			switch e := e.(type) {
			case *tcell.EventKey:
				switch e.Key() {
				case tcell.KeyCtrlC:
					break evtloop
				case tcell.KeyUp:
					channel += .2
					if channel > 107.9 {
						channel = 87.5
					}
					s.SetChannel(channel)
					dispatcher = rds.NewDispatcher(nil)
					station = nil
				case tcell.KeyDown:
					channel -= .2
					if channel < 87.5 {
						channel = 107.9
					}
					s.SetChannel(channel)
					dispatcher = rds.NewDispatcher(nil)
					station = nil
				}
			}

		case <-s.Update:
			rdsr, stereo, traffic := ' ', "Mono  ", ' '
			if s.Reg[STATUSRSSI]&0x8000 == 0x8000 {
				rdsr = 'X'
				group := rds.NewPreFramedGroup(s.Reg[RDSA], s.Reg[RDSB], s.Reg[RDSC], s.Reg[RDSD])
				if st := dispatcher.Dispatch(group); st != nil {
					station = st
				}
			}
			if s.Reg[STATUSRSSI]&0x0010 == 0x0010 {
				stereo = "Stereo"
			}
			if station != nil && station.TrafficProgram {
				traffic = 'T'
			}

			rssi := int(s.Reg[STATUSRSSI] & 0xff)
			actual := 87.5 + .2*float64(s.Reg[READCHAN]&0x1ff)

			callsign, progName, programService, radioText := "", "", "", ""
			if station != nil {
				cs := rds.CallsignFromPI(station.PI)
				callsign = string(cs[:])
				if station.HasProgramType {
					progName = rds.ProgramTypeNamesNA[station.ProgramType]
				}
				programService = station.ProgramService.String()
				if station.HasRadioText {
					radioText = station.RadioText
				}
			}

			disp.DrawFrequency(channel)
			disp.DrawCallsign(callsign, progName)
			disp.DrawProgramName(radioText, programService)
			disp.Show()

			disp.DrawStatusLine(channel, actual, callsign, rssi, stereo, rdsr, traffic)
		}
	}
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
