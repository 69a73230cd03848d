package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/nats-io/nats.go"

	natsadapter "github.com/stridemap/stridemap/internal/adapters/nats"
	"github.com/stridemap/stridemap/internal/core/domain"
	"github.com/stridemap/stridemap/internal/pkg/config"
)

// drawsim replays synthetic drawing sessions against the broker so the
// API can be exercised without a map frontend. Each session finishes a
// path, sometimes edits it, and occasionally removes it through the
// tool's own control.

func main() {
	var (
		sessions = flag.Int("sessions", 10, "number of drawing sessions to replay")
		interval = flag.Duration("interval", 2*time.Second, "pause between gestures")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "rng seed")
	)
	flag.Parse()

	cfg, err := config.Load("stridemap-drawsim")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	nc, err := nats.Connect(cfg.NATS.URL,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		log.Fatalf("nats: %v", err)
	}
	defer nc.Drain()

	rng := rand.New(rand.NewSource(*seed))
	log.Printf("Stridemap drawsim — %d sessions, %s between gestures", *sessions, *interval)

	// Walking paths cluster around the airport campus the default
	// locations cover.
	const baseLat, baseLon = 33.6404, -84.4380

	seq := 0
	for i := 0; i < *sessions; i++ {
		seq++
		vertices := randomPath(rng, baseLat, baseLon)

		publish(nc, natsadapter.SubjectPathFinished, &domain.DrawEvent{
			Type:     domain.DrawPathFinished,
			Vertices: vertices,
		})
		log.Printf("session %d: finished path with %d vertices", i+1, len(vertices))
		time.Sleep(*interval)

		// The server assigns ids in draw order, so the simulator can
		// predict them as long as nothing else is publishing.
		id := "path-" + strconv.Itoa(seq)

		if rng.Float64() < 0.5 {
			moved := append([]domain.GeoPoint(nil), vertices...)
			moved[len(moved)-1].Lat += jitter(rng)
			moved[len(moved)-1].Lon += jitter(rng)
			publish(nc, natsadapter.SubjectPathEdited, &domain.DrawEvent{
				Type:     domain.DrawPathEdited,
				PathID:   id,
				Vertices: moved,
			})
			log.Printf("session %d: edited %s", i+1, id)
			time.Sleep(*interval)
		}

		if rng.Float64() < 0.2 {
			publish(nc, natsadapter.SubjectPathRemoved, &domain.DrawEvent{
				Type:   domain.DrawPathRemoved,
				PathID: id,
			})
			log.Printf("session %d: removed %s via tool", i+1, id)
			time.Sleep(*interval)
		}
	}

	if err := nc.Flush(); err != nil {
		log.Fatalf("flush: %v", err)
	}
	log.Printf("done")
}

func randomPath(rng *rand.Rand, lat, lon float64) []domain.GeoPoint {
	n := 2 + rng.Intn(6)
	points := make([]domain.GeoPoint, 0, n)
	cur := domain.GeoPoint{
		Lat: lat + jitter(rng)*10,
		Lon: lon + jitter(rng)*10,
	}
	for i := 0; i < n; i++ {
		points = append(points, cur)
		cur.Lat += jitter(rng)
		cur.Lon += jitter(rng)
	}
	return points
}

// jitter returns a step of up to ~100m in either direction.
func jitter(rng *rand.Rand) float64 {
	return (rng.Float64() - 0.5) * 0.002
}

func publish(nc *nats.Conn, subject string, event *domain.DrawEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("marshal event: %v", err)
	}
	if err := nc.Publish(subject, data); err != nil {
		log.Fatalf("publish %s: %v", subject, err)
	}
}
