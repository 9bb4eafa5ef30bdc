package kubeconfig

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecentContexts(t *testing.T) {
	tests := []struct {
		name string
		adds []string
		want []string
	}{
		{name: "empty", adds: nil, want: []string{}},
		{name: "most recent first", adds: []string{"a", "b", "c"}, want: []string{"c", "b", "a"}},
		{name: "re-adding moves to front", adds: []string{"a", "b", "a"}, want: []string{"a", "b"}},
		{name: "empty names are ignored", adds: []string{"a", "", "b"}, want: []string{"b", "a"}},
		{
			name: "bounded to five entries",
			adds: []string{"1", "2", "3", "4", "5", "6", "7"},
			want: []string{"7", "6", "5", "4", "3"},
		},
		{
			name: "re-adding at capacity keeps five",
			adds: []string{"1", "2", "3", "4", "5", "3"},
			want: []string{"3", "5", "4", "2", "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecentContexts()
			for _, name := range tt.adds {
				r.Add(name)
			}
			assert.Equal(t, tt.want, r.List())
			assert.Equal(t, len(tt.want), r.Len())
		})
	}
}

func TestRecentContextsRenameAndRemove(t *testing.T) {
	r := NewRecentContexts()
	r.Add("a")
	r.Add("b")
	r.Add("c")

	r.Rename("b", "beta")
	assert.Equal(t, []string{"c", "beta", "a"}, r.List())

	r.Remove("c")
	assert.Equal(t, []string{"beta", "a"}, r.List())

	r.Remove("missing")
	assert.Equal(t, []string{"beta", "a"}, r.List())
}

func TestRecentContextsListIsACopy(t *testing.T) {
	r := NewRecentContexts()
	r.Add("a")

	list := r.List()
	list[0] = "mutated"
	assert.Equal(t, []string{"a"}, r.List())
}

func TestRecentContextsConcurrentAdds(t *testing.T) {
	r := NewRecentContexts()
	done := make(chan struct{})
	for i := 0; i < 20; i++ {
		go func(i int) {
			r.Add(fmt.Sprintf("ctx-%d", i%7))
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < 20; i++ {
		<-done
	}
	assert.LessOrEqual(t, r.Len(), maxRecentContexts)
}
