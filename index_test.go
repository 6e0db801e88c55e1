// Copyright (c) Bence Cserna. All rights reserved.
// Licensed under the MIT License.

package dpq_test

import (
	"testing"

	dpq "github.com/csbence/dpq-go"
	"github.com/stretchr/testify/require"
)

func TestByPosition(t *testing.T) {
	chk := require.New(t)
	var index dpq.ByPosition[*node]

	n := &node{value: 1}
	chk.Equal(dpq.NotQueued, index.Position(n))

	n.pos = 1
	chk.Equal(1, index.Position(n))

	index.SetPosition(n, 2)
	chk.Equal(2, n.pos)
	chk.Equal(2, index.Position(n))

	index.SetPosition(n, dpq.NotQueued)
	chk.Equal(dpq.NotQueued, n.pos)
}

func TestMapIndex(t *testing.T) {
	chk := require.New(t)
	index := dpq.NewMapIndex[string]()

	// Absent keys read as the sentinel rather than failing.
	chk.Equal(dpq.NotQueued, index.Position("absent"))

	index.SetPosition("a", 1)
	index.SetPosition("b", 2)
	chk.Equal(1, index.Position("a"))
	chk.Equal(2, index.Position("b"))

	index.SetPosition("a", 3)
	chk.Equal(3, index.Position("a"))

	// Recording the sentinel drops the entry entirely.
	index.SetPosition("a", dpq.NotQueued)
	chk.Equal(dpq.NotQueued, index.Position("a"))
	chk.Len(index, 1)
}
