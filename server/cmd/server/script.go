package main

import (
	"github.com/automoto/slipstep/server/core"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// scriptInput is the demo's canned input: walk right for the first half,
// jump once at the quarter mark, then walk left. The jump button is held for
// a few ticks to show it only fires on the press.
func scriptInput(tick, total int) (axis float64, jumpHeld bool) {
	axis = 1
	if tick >= total/2 {
		axis = -1
	}
	q := total / 4
	jumpHeld = tick >= q && tick < q+5
	return axis, jumpHeld
}

func runScript(server *core.Server, id uuid.UUID, ticks, tickRate int, log *logrus.Logger) {
	dt := 1 / float64(tickRate)
	for i := 0; i < ticks; i++ {
		axis, jump := scriptInput(i, ticks)
		if err := server.SetInput(id, axis, jump); err != nil {
			log.WithError(err).Error("set input")
			return
		}
		server.Tick(dt)

		if i%tickRate != 0 && i != ticks-1 {
			continue
		}
		snap, err := server.Snapshot(id)
		if err != nil {
			log.WithError(err).Error("snapshot")
			return
		}
		log.WithFields(logrus.Fields{
			"tick":     i,
			"x":        snap.Position.X(),
			"y":        snap.Position.Y(),
			"activity": snap.Activity,
		}).Info(snap.State)
	}
}
