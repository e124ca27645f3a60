package supervisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewContract_ExactlyTwoCoordinationCalls(t *testing.T) {
	c := &ReviewContract{}
	c.ObserveToolUse("swarm")
	c.ObserveToolUse("search")
	c.ObserveToolUse("swarm")
	c.ObserveNodeStart()

	assert.NoError(t, c.Check())
}

func TestReviewContract_WrongCallCount(t *testing.T) {
	for _, calls := range []int{0, 1, 3} {
		c := &ReviewContract{}
		for i := 0; i < calls; i++ {
			c.ObserveToolUse("swarm")
		}
		err := c.Check()
		require.Error(t, err)
		re, ok := AsRunError(err)
		require.True(t, ok)
		assert.Equal(t, CodeAgentReviewContractViolation, re.Code)
	}
}

func TestReviewContract_NodeBudgetTakesPrecedence(t *testing.T) {
	c := &ReviewContract{}
	c.ObserveToolUse("swarm")
	for i := 0; i < 21; i++ {
		c.ObserveNodeStart()
	}

	err := c.Check()
	require.Error(t, err)
	re, ok := AsRunError(err)
	require.True(t, ok)
	assert.Equal(t, CodeAgentReviewNodeBudgetExceeded, re.Code)
}
