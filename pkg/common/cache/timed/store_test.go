package timed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visit(s *store[string, int], n int) []string {
	var out []string
	for i := 0; i < n; i++ {
		el := s.next()
		if el == nil {
			out = append(out, "<end>")
			break
		}
		out = append(out, el.Value.(*entry[string, int]).key)
	}
	return out
}

func TestStore_Next(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *store[string, int])
		steps int
		want  []string
	}{
		{
			name:  "empty_is_exhausted",
			setup: func(s *store[string, int]) {},
			steps: 3,
			want:  []string{"<end>"},
		},
		{
			name: "insertion_order",
			setup: func(s *store[string, int]) {
				s.put("a", 1, time.Time{})
				s.put("b", 2, time.Time{})
				s.put("c", 3, time.Time{})
			},
			steps: 5,
			want:  []string{"a", "b", "c", "<end>"},
		},
		{
			name: "overwrite_keeps_position",
			setup: func(s *store[string, int]) {
				s.put("a", 1, time.Time{})
				s.put("b", 2, time.Time{})
				s.put("a", 3, time.Time{})
			},
			steps: 3,
			want:  []string{"a", "b", "<end>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore[string, int]()
			tt.setup(s)
			assert.Equal(t, tt.want, visit(s, tt.steps))
		})
	}
}

func TestStore_ExhaustedUntilRewind(t *testing.T) {
	s := newStore[string, int]()
	s.put("a", 1, time.Time{})

	assert.Equal(t, []string{"a", "<end>"}, visit(s, 2))
	assert.Equal(t, []string{"<end>"}, visit(s, 1))

	s.rewind()
	assert.Equal(t, []string{"a"}, visit(s, 1))
}

func TestStore_RemoveVisitedKeepsPosition(t *testing.T) {
	s := newStore[string, int]()
	for _, k := range []string{"a", "b", "c", "d"} {
		s.put(k, 0, time.Time{})
	}

	require.Equal(t, []string{"a", "b"}, visit(s, 2))
	s.remove("b") // under the cursor
	s.remove("a") // behind the cursor

	assert.Equal(t, []string{"c", "d", "<end>"}, visit(s, 3))
}

func TestStore_RemoveAheadIsSkipped(t *testing.T) {
	s := newStore[string, int]()
	for _, k := range []string{"a", "b", "c"} {
		s.put(k, 0, time.Time{})
	}

	require.Equal(t, []string{"a"}, visit(s, 1))
	s.remove("b")

	assert.Equal(t, []string{"c", "<end>"}, visit(s, 2))
}

func TestStore_ClearResetsCursor(t *testing.T) {
	s := newStore[string, int]()
	s.put("a", 1, time.Time{})
	s.put("b", 2, time.Time{})
	visit(s, 1)

	s.clear()
	assert.Equal(t, 0, s.len())
	assert.Equal(t, []string{"<end>"}, visit(s, 1))

	s.put("c", 3, time.Time{})
	s.rewind()
	assert.Equal(t, []string{"c"}, visit(s, 1))
}

func TestStore_PutOverwritesTimestamps(t *testing.T) {
	s := newStore[string, int]()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.put("a", 1, t0)

	ent, _ := s.get("a")
	ent.lastAccessedAt = t0.Add(time.Minute)

	t1 := t0.Add(time.Hour)
	s.put("a", 2, t1)

	ent, ok := s.get("a")
	require.True(t, ok)
	assert.Equal(t, 2, ent.data)
	assert.Equal(t, t1, ent.addedAt)
	assert.Equal(t, t1, ent.lastAccessedAt)
}

func TestStore_RemoveMissing(t *testing.T) {
	s := newStore[string, int]()
	assert.False(t, s.remove("nope"))
}
