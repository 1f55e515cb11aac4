// Command rdscapd is a standalone capture daemon: it consumes a decoded
// RDS bitstream or a pre-framed hex group feed, runs it through the rds
// package's synchronizer and dispatcher, and fans the result out three
// ways — a gzip-rotated ASCII capture log (spec §6), a Prometheus
// /metrics endpoint, and a websocket stream of live decoded groups.
package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/hashicorp/logutils"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openwebrx/redsea-go/rds"
)

func main() {
	configPath := flag.String("config", "", "path to rdscapd.yaml (optional; defaults apply if omitted)")
	inputMode := flag.String("input", "hex", `input format: "hex" for pre-framed ASCII capture lines, "bits" for a raw demodulated bitstream`)
	flag.Parse()

	var cfg *Config
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("[ERROR] %v", err)
		}
	} else {
		cfg, _ = LoadConfig(os.DevNull)
	}

	log.SetOutput(&logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "WARN", "ERROR"},
		MinLevel: logutils.LogLevel(cfg.LogLevel),
		Writer:   os.Stderr,
	})

	metrics := NewMetrics()

	capture, err := NewCaptureWriter(cfg.CaptureDir, cfg.RotateEveryMiB)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	defer capture.Close()

	hub := NewHub()

	policy := rds.AllowAllStations
	if len(cfg.AllowedPIs) > 0 {
		allowed := make(map[uint16]bool, len(cfg.AllowedPIs))
		for _, pi := range cfg.AllowedPIs {
			allowed[uint16(pi)] = true
		}
		policy = func(pi uint16) bool { return allowed[pi] }
	}
	dispatcher := rds.NewDispatcher(policy)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/stream", hub.ServeWS)

	go func() {
		log.Printf("[INFO] listening on %s", cfg.ListenAddr)
		if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
			log.Fatalf("[ERROR] http server: %v", err)
		}
	}()

	handle := func(g rds.Group) {
		station := dispatcher.Dispatch(g)

		typ := "unknown"
		if g.HasType() {
			typ = g.Type().String()
		}
		metrics.observeGroup(typ, g.NumErrors(), g.BLER(), true)

		if err := capture.WriteGroup(g); err != nil {
			log.Printf("[WARN] capture write failed: %v", err)
		}
		hub.Broadcast(g, station)
	}

	switch *inputMode {
	case "hex":
		if err := runHexMode(os.Stdin, handle); err != nil && err != io.EOF {
			log.Fatalf("[ERROR] %v", err)
		}
	case "bits":
		if err := runBitMode(os.Stdin, metrics, handle); err != nil && err != io.EOF {
			log.Fatalf("[ERROR] %v", err)
		}
	default:
		log.Fatalf("[ERROR] unknown -input mode %q", *inputMode)
	}
}

// runHexMode reads one pre-framed group per line (spec §6's ASCII
// capture format) and hands each straight to handle.
func runHexMode(r io.Reader, handle func(rds.Group)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		g, err := rds.ParseHexGroup(line)
		if err != nil {
			log.Printf("[WARN] skipping malformed capture line: %v", err)
			continue
		}
		handle(g)
	}
	return scanner.Err()
}

// runBitMode reads a raw demodulated bitstream as a sequence of '0'/'1'
// characters, feeding it through a BlockStream to recover groups the way
// a live RF front end would.
func runBitMode(r io.Reader, metrics *Metrics, handle func(rds.Group)) error {
	stream := rds.NewBlockStream()
	reader := bufio.NewReader(r)

	lastSynced := stream.IsInSync()
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return err
		}
		switch b {
		case '0':
			stream.PushBit(false)
		case '1':
			stream.PushBit(true)
		default:
			continue
		}

		if stream.IsInSync() != lastSynced {
			lastSynced = stream.IsInSync()
			if lastSynced {
				log.Printf("[INFO] block synchronizer: IN-SYNC")
			} else {
				log.Printf("[INFO] block synchronizer: OUT-OF-SYNC, %d bits into current hunt", stream.GetNumBitsSinceSyncLost())
			}
		}

		for stream.HasGroupReady() {
			handle(stream.PopGroup())
		}
		if stream.IsInSync() {
			metrics.syncState.Set(1)
		} else {
			metrics.syncState.Set(0)
		}
	}
}
