package hamilton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hamcircuit/core"
	"github.com/katalvlaran/hamcircuit/hamilton"
)

func TestValidateCircuit(t *testing.T) {
	square := fromEdges([][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}})

	tests := []struct {
		name    string
		g       *core.Graph
		circuit []int
		ok      bool
	}{
		{"Valid", square, []int{1, 2, 3, 4, 1}, true},
		{"ValidReversedRotation", square, []int{3, 2, 1, 4, 3}, true},
		{"TooShort", square, []int{1, 2, 3, 1}, false},
		{"NotClosed", square, []int{1, 2, 3, 4, 3}, false},
		{"Repeated", square, []int{1, 2, 1, 2, 1}, false},
		{"UnknownVertex", square, []int{1, 2, 3, 9, 1}, false},
		{"MissingEdge", square, []int{1, 3, 2, 4, 1}, false},
		{"Singleton", fromEdges(nil, 5), []int{5, 5}, true},
		{"EmptyGraph", core.NewGraph(), []int{}, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := hamilton.ValidateCircuit(tc.g, tc.circuit)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, hamilton.ErrInvalidCircuit)
			}
		})
	}
}

func TestValidateCircuit_NilGraph(t *testing.T) {
	assert.ErrorIs(t, hamilton.ValidateCircuit(nil, []int{1, 1}), hamilton.ErrGraphNil)
}
