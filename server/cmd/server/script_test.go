package main

import (
	"testing"

	"github.com/automoto/slipstep/server/core"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptInput(t *testing.T) {
	axis, jump := scriptInput(0, 240)
	assert.Equal(t, 1.0, axis)
	assert.False(t, jump)

	_, jump = scriptInput(60, 240)
	assert.True(t, jump)
	_, jump = scriptInput(65, 240)
	assert.False(t, jump)

	axis, _ = scriptInput(120, 240)
	assert.Equal(t, -1.0, axis)
}

func TestRunScriptLogsState(t *testing.T) {
	log, hook := test.NewNullLogger()
	server := core.NewServer(core.DefaultLevel(), log, nil)
	id, err := server.SpawnAt(0)
	require.NoError(t, err)
	hook.Reset()

	runScript(server, id, 120, 60, log)

	entries := hook.AllEntries()
	require.Len(t, entries, 3) // ticks 0, 60 and the last one
	for _, e := range entries {
		assert.Equal(t, logrus.InfoLevel, e.Level)
		assert.Contains(t, e.Message, "Player(MovementDirection:")
	}
	assert.Equal(t, uint64(120), server.TickCount())
}
