package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputQueueCapRejectsOverflow(t *testing.T) {
	q := NewOutputQueue(4)
	for i := 0; i < 4; i++ {
		assert.True(t, q.Push(NewNoteOn(int32(i), nil, 0, 60, 1.0)))
	}
	assert.False(t, q.Push(NewNoteOn(4, nil, 0, 60, 1.0)))
	assert.Equal(t, 4, q.Len())
}

func TestOutputQueuePreservesInsertionOrder(t *testing.T) {
	q := NewOutputQueue(4)
	for i := 0; i < 4; i++ {
		q.Push(NewNoteOn(int32(i), nil, 0, 60, 1.0))
	}
	got := q.Events()
	for i, e := range got {
		assert.Equal(t, int32(i), e.Timing)
	}
}

func TestOutputQueueResetAllowsReuse(t *testing.T) {
	q := NewOutputQueue(2)
	q.Push(NewNoteOn(0, nil, 0, 60, 1.0))
	q.Push(NewNoteOn(1, nil, 0, 60, 1.0))
	assert.False(t, q.Push(NewNoteOn(2, nil, 0, 60, 1.0)))

	q.Reset()
	assert.Equal(t, 0, q.Len())
	assert.True(t, q.Push(NewNoteOn(3, nil, 0, 60, 1.0)))
	assert.Equal(t, 1, q.Len())
}
