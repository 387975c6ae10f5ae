package ingest

import (
	"bonus-route-planner/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadEdges(t *testing.T) {
	edges, err := ReadEdges(strings.NewReader("A,B,5\n# comment\nB, C, 3\n\nA,C,10.5\n"))
	require.NoError(t, err)
	require.Equal(t, []domain.Edge{
		{From: "A", To: "B", TravelTime: 5},
		{From: "B", To: "C", TravelTime: 3},
		{From: "A", To: "C", TravelTime: 10.5},
	}, edges)
}

func TestReadTasksSortsByDeadline(t *testing.T) {
	tasks, err := ReadTasks(strings.NewReader("40,C,8\n20,B,5\n40,D,1\n"))
	require.NoError(t, err)
	require.Equal(t, []domain.DeliveryTask{
		{ID: 2, Deadline: 20, Destination: "B", Bonus: 5},
		{ID: 1, Deadline: 40, Destination: "C", Bonus: 8},
		{ID: 3, Deadline: 40, Destination: "D", Bonus: 1},
	}, tasks)
}

func TestReadRejectsMalformedRows(t *testing.T) {
	_, err := ReadTasks(strings.NewReader("20,B,5\nsoon,C,3\n"))
	require.ErrorContains(t, err, "line 2")

	_, err = ReadEdges(strings.NewReader("A,B\n"))
	require.Error(t, err)
}

func TestReadRejectsNonFiniteNumbers(t *testing.T) {
	_, err := ReadTasks(strings.NewReader("10,B,1\ninf,C,5\n"))
	require.ErrorContains(t, err, "line 2")

	_, err = ReadEdges(strings.NewReader("A,B,NaN\n"))
	require.ErrorContains(t, err, "line 1")
}
