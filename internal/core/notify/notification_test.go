package notify

import (
	"sync"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestCategory_IsValid(t *testing.T) {
	tests := []struct {
		category Category
		want     bool
	}{
		{CategoryNone, true},
		{CategoryInfo, true},
		{CategorySuccess, true},
		{CategoryWarning, true},
		{CategoryDanger, true},
		{"error", false},
		{"INFO", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.IsValid())
		})
	}
}

func TestContent_Variants(t *testing.T) {
	var zero Content
	assert.Equal(t, ContentNone, zero.Kind())
	assert.Nil(t, zero.Payload())
	assert.Empty(t, zero.Render())

	p := Payload([]int{1, 2})
	assert.Equal(t, ContentPayload, p.Kind())
	assert.Equal(t, []int{1, 2}, p.Payload())
	assert.Empty(t, p.Render())

	f := Fragment(func() string { return "hi" })
	assert.Equal(t, ContentFragment, f.Kind())
	assert.Nil(t, f.Payload())
	assert.Equal(t, "hi", f.Render())

	assert.Equal(t, ContentNone, Fragment(nil).Kind())
}

func TestMessage(t *testing.T) {
	c := Message("Hello World")
	assert.Equal(t, map[string]any{"message": "Hello World"}, c.Payload())
}

func TestMarkdown_RendersText(t *testing.T) {
	c := Markdown("**disk** almost full", 40)

	assert.Equal(t, ContentFragment, c.Kind())
	out := ansi.Strip(c.Render())
	assert.Contains(t, out, "disk")
	assert.Contains(t, out, "almost full")
}

func TestIDGenerator_ConcurrentUnique(t *testing.T) {
	gen := NewIDGenerator()

	const workers, per = 8, 500
	var (
		mu   sync.Mutex
		seen = make(map[ID]bool, workers*per)
		wg   sync.WaitGroup
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]ID, 0, per)
			for range per {
				local = append(local, gen.Next())
			}
			mu.Lock()
			for _, id := range local {
				seen[id] = true
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*per)
}

func TestIDGenerator_StartsAtOne(t *testing.T) {
	gen := NewIDGenerator()
	assert.Equal(t, ID(1), gen.Next())
	assert.Equal(t, ID(2), gen.Next())
	assert.Equal(t, "3", gen.Next().String())
}
