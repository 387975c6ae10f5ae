package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareStrategies(t *testing.T) {
	cat := mustCatalog(t, triangleTasks())

	cmp, err := CompareStrategies(context.Background(), triangleNetwork(t), cat, "A", RouterOptions{})
	require.NoError(t, err)

	require.Equal(t, StrategyExhaustive, cmp.Basic.Strategy)
	require.Equal(t, StrategyHeuristic, cmp.Optimized.Strategy)
	require.Equal(t, []ChartPoint{
		{Label: "basic simulation", Elapsed: 18, Bonus: 13},
		{Label: "optimized simulation", Elapsed: 13, Bonus: 13},
	}, cmp.Points)

	require.Equal(t, 2, cat.Len(), "comparison must not consume the caller's catalog")
}

func TestCompareStrategiesFailsFast(t *testing.T) {
	cat := mustCatalog(t, triangleTasks())
	_, err := CompareStrategies(context.Background(), triangleNetwork(t), cat, "", RouterOptions{})
	require.Error(t, err)
}
