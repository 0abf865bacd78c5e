package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	err := run(options{Count: 64, Rounds: 2, Profile: "none"})
	require.NoError(t, err)
}

func TestRun_InvalidOptions(t *testing.T) {
	require.Error(t, run(options{Count: 0, Rounds: 2, Profile: "none"}))
	require.Error(t, run(options{Count: 64, Rounds: 0, Profile: "none"}))
	require.ErrorContains(t, run(options{Count: 64, Rounds: 1, Profile: "trace"}), "unknown profile")
}
