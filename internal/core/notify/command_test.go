package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_AddDoesNotMutateInput(t *testing.T) {
	gen := NewIDGenerator()
	now := time.Now()

	base := Reduce(nil, Add{Content: Message("a")}, gen, now)
	base = Reduce(base, Add{Content: Message("b")}, gen, now)
	snapshot := append([]Notification(nil), base...)

	next := Reduce(base, Add{Content: Message("c")}, gen, now)

	assert.Equal(t, snapshot, base)
	assert.Len(t, next, 3)
}

func TestReduce_RemoveOneDoesNotMutateInput(t *testing.T) {
	gen := NewIDGenerator()
	now := time.Now()

	list := Reduce(nil, Add{Content: Message("a")}, gen, now)
	list = Reduce(list, Add{Content: Message("b")}, gen, now)
	list = Reduce(list, Add{Content: Message("c")}, gen, now)
	snapshot := append([]Notification(nil), list...)

	next := Reduce(list, RemoveOne{ID: list[0].ID}, gen, now)

	assert.Equal(t, snapshot, list)
	assert.Equal(t, []ID{2, 3}, ids(next))
}

func TestReduce_NoopReturnsSameSlice(t *testing.T) {
	gen := NewIDGenerator()
	list := Reduce(nil, Add{Content: Message("a")}, gen, time.Now())

	tests := []struct {
		name string
		cmd  Command
	}{
		{"missing id", RemoveOne{ID: 77}},
		{"unrecognized", bogusCommand{}},
		{"unknown kind", Unknown{Kind: "explode"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Reduce(list, tt.cmd, gen, time.Now())
			require.Len(t, next, 1)
			assert.Same(t, &list[0], &next[0])
		})
	}
}

func TestReduce_RemoveAll(t *testing.T) {
	gen := NewIDGenerator()
	list := Reduce(nil, Add{Content: Message("a")}, gen, time.Now())

	assert.Empty(t, Reduce(list, RemoveAll{}, gen, time.Now()))
	assert.Empty(t, Reduce(nil, RemoveAll{}, gen, time.Now()))
}

func TestReduce_AddFragmentWithCategory(t *testing.T) {
	gen := NewIDGenerator()
	calls := 0
	frag := Fragment(func() string {
		calls++
		return "<b>boom</b>"
	})

	list := Reduce(nil, Add{Content: frag, Category: CategoryDanger}, gen, time.Now())

	require.Len(t, list, 1)
	assert.Equal(t, CategoryDanger, list[0].Category)
	assert.Equal(t, ContentFragment, list[0].Content.Kind())
	assert.Zero(t, calls, "adding must not render the fragment")
	assert.Equal(t, "<b>boom</b>", list[0].Content.Render())
	assert.Equal(t, 1, calls)
}
