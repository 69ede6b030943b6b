package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// GameLoop ticks the server at a fixed rate and feeds it the measured time
// since the previous tick.
type GameLoop struct {
	server   *Server
	tickRate int
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop. A second call while the loop is running returns
// immediately.
func (g *GameLoop) Run() {
	if !g.running.CompareAndSwap(false, true) {
		return
	}
	defer g.running.Store(false)

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.server.log.WithField("tick_rate", g.tickRate).Info("game loop started")

	last := time.Now()
	for {
		select {
		case <-g.stopChan:
			g.server.log.Info("game loop stopped")
			return
		case now := <-ticker.C:
			g.server.Tick(now.Sub(last).Seconds())
			last = now
		}
	}
}

func (g *GameLoop) Running() bool {
	return g.running.Load()
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}
