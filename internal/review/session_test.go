package review_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cull/internal/review"
	"cull/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, images ...string) *review.Session {
	t.Helper()
	output := filepath.Join(t.TempDir(), "out.sh")
	bindings := map[rune]string{'a': "/pics/animals", 'v': "/pics/vacation"}
	return review.New(images, bindings, nil, output)
}

func TestSessionDecisions(t *testing.T) {
	t.Run("skip advances past the current image", func(t *testing.T) {
		s := newTestSession(t, "/in/one.png", "/in/two.png")

		current, ok := s.Current()
		require.True(t, ok)
		assert.Equal(t, "/in/one.png", current)

		s.Skip()

		current, ok = s.Current()
		require.True(t, ok)
		assert.Equal(t, "/in/two.png", current)
		require.Len(t, s.Actions(), 1)
		assert.Equal(t, types.NewSkip("/in/one.png"), s.Actions()[0])
	})

	t.Run("move files the image under the bound directory", func(t *testing.T) {
		s := newTestSession(t, "/in/cat.jpg")

		require.NoError(t, s.MoveTo('a'))

		require.Len(t, s.Actions(), 1)
		assert.Equal(t, types.NewMove("/in/cat.jpg", "/pics/animals"), s.Actions()[0])
		assert.True(t, s.Done())
	})

	t.Run("unbound key is an error and logs nothing", func(t *testing.T) {
		s := newTestSession(t, "/in/cat.jpg")

		err := s.MoveTo('z')

		require.Error(t, err)
		assert.Empty(t, s.Actions())
		_, ok := s.Current()
		assert.True(t, ok, "review should still be on the same image")
	})

	t.Run("delete records a removal", func(t *testing.T) {
		s := newTestSession(t, "/in/blurry.jpg")

		s.Delete()

		require.Len(t, s.Actions(), 1)
		assert.Equal(t, types.NewDelete("/in/blurry.jpg"), s.Actions()[0])
	})

	t.Run("undo rewinds the last decision", func(t *testing.T) {
		s := newTestSession(t, "/in/one.png", "/in/two.png")
		s.Skip()
		s.Skip()
		require.True(t, s.Done())

		s.Undo()

		current, ok := s.Current()
		require.True(t, ok)
		assert.Equal(t, "/in/two.png", current)
	})

	t.Run("decisions after completion are ignored", func(t *testing.T) {
		s := newTestSession(t, "/in/one.png")
		s.Skip()
		require.True(t, s.Done())

		s.Skip()
		s.Delete()
		require.NoError(t, s.MoveTo('a'))

		assert.Len(t, s.Actions(), 1)
	})

	t.Run("progress counts decided images", func(t *testing.T) {
		s := newTestSession(t, "/in/one.png", "/in/two.png", "/in/three.png")
		s.Skip()

		reviewed, total := s.Progress()
		assert.Equal(t, 1, reviewed)
		assert.Equal(t, 3, total)
	})
}

func TestSessionRename(t *testing.T) {
	t.Run("begin seeds the buffer with the base name", func(t *testing.T) {
		s := newTestSession(t, "/in/cat.jpg")

		s.BeginRename()

		assert.True(t, s.InputActive())
		assert.Equal(t, "cat.jpg", s.Input())
		assert.Equal(t, len("cat.jpg"), s.InputIndex())
	})

	t.Run("editing the buffer", func(t *testing.T) {
		s := newTestSession(t, "/in/cat.jpg")
		s.BeginRename()

		s.CursorHome()
		s.InsertRune('b')
		s.InsertRune('i')
		s.InsertRune('g')
		s.InsertRune('-')
		assert.Equal(t, "big-cat.jpg", s.Input())
		assert.Equal(t, 4, s.InputIndex())

		s.Backspace()
		assert.Equal(t, "bigcat.jpg", s.Input())

		s.DeleteRune()
		assert.Equal(t, "bigat.jpg", s.Input())

		s.CursorLeft()
		s.CursorLeft()
		s.CursorRight()
		assert.Equal(t, 2, s.InputIndex())

		s.CursorEnd()
		assert.Equal(t, len("bigat.jpg"), s.InputIndex())
	})

	t.Run("commit records a pending rename", func(t *testing.T) {
		s := newTestSession(t, "/in/cat.jpg")
		s.BeginRename()
		s.CursorHome()
		s.InsertRune('a')
		s.InsertRune('-')

		s.CommitRename()

		assert.False(t, s.InputActive())
		name, ok := s.PendingRename()
		require.True(t, ok)
		assert.Equal(t, "a-cat.jpg", name)

		// A pending rename does not advance the review.
		current, ok := s.Current()
		require.True(t, ok)
		assert.Equal(t, "/in/cat.jpg", current)
	})

	t.Run("unchanged name commits nothing", func(t *testing.T) {
		s := newTestSession(t, "/in/cat.jpg")
		s.BeginRename()
		s.CommitRename()

		assert.Empty(t, s.Actions())
		_, ok := s.PendingRename()
		assert.False(t, ok)
	})

	t.Run("empty name commits nothing", func(t *testing.T) {
		s := newTestSession(t, "/in/cat.jpg")
		s.BeginRename()
		for range "cat.jpg" {
			s.CursorEnd()
			s.Backspace()
		}
		require.Empty(t, s.Input())

		s.CommitRename()
		assert.Empty(t, s.Actions())
	})

	t.Run("cancel discards the edit", func(t *testing.T) {
		s := newTestSession(t, "/in/cat.jpg")
		s.BeginRename()
		s.InsertRune('x')

		s.CancelRename()

		assert.False(t, s.InputActive())
		assert.Empty(t, s.Input())
		assert.Empty(t, s.Actions())
	})

	t.Run("move consumes the pending rename", func(t *testing.T) {
		s := newTestSession(t, "/in/cat.jpg", "/in/dog.jpg")
		s.BeginRename()
		s.CursorHome()
		s.InsertRune('a')
		s.InsertRune('-')
		s.CommitRename()

		require.NoError(t, s.MoveTo('a'))

		actions := s.Actions()
		require.Len(t, actions, 2)
		assert.Equal(t, types.Rename, actions[0].Kind)
		assert.Equal(t, types.NewMove("/in/cat.jpg", filepath.Join("/pics/animals", "a-cat.jpg")), actions[1])

		// One image consumed despite two logged actions.
		current, ok := s.Current()
		require.True(t, ok)
		assert.Equal(t, "/in/dog.jpg", current)
	})

	t.Run("undo re-exposes the pending rename", func(t *testing.T) {
		s := newTestSession(t, "/in/cat.jpg")
		s.BeginRename()
		s.CursorHome()
		s.InsertRune('x')
		s.CommitRename()
		require.NoError(t, s.MoveTo('a'))
		require.True(t, s.Done())

		s.Undo()

		name, ok := s.PendingRename()
		require.True(t, ok)
		assert.Equal(t, "xcat.jpg", name)

		s.Undo()
		_, ok = s.PendingRename()
		assert.False(t, ok)
		assert.Empty(t, s.Actions())
	})

	t.Run("later rename wins", func(t *testing.T) {
		s := newTestSession(t, "/in/cat.jpg")
		s.BeginRename()
		s.CursorHome()
		s.InsertRune('x')
		s.CommitRename()

		s.BeginRename()
		s.CursorHome()
		s.InsertRune('y')
		s.CommitRename()

		name, ok := s.PendingRename()
		require.True(t, ok)
		assert.Equal(t, "ycat.jpg", name)
	})
}

func TestSessionTabs(t *testing.T) {
	s := newTestSession(t, "/in/one.png")
	assert.Equal(t, review.TabMain, s.Tab())

	s.NextTab()
	assert.Equal(t, review.TabScript, s.Tab())

	s.ScrollRight()
	s.ScrollRight()
	s.NextTab()
	assert.Equal(t, review.TabMain, s.Tab())

	x, y := s.ScrollOffset()
	assert.Zero(t, x, "switching tabs resets horizontal scroll")
	assert.Zero(t, y, "switching tabs resets vertical scroll")
}

func TestSessionScrolling(t *testing.T) {
	t.Run("offsets clamp at zero", func(t *testing.T) {
		s := newTestSession(t, "/in/one.png")
		s.ScrollUp()
		s.ScrollLeft()

		x, y := s.ScrollOffset()
		assert.Zero(t, x)
		assert.Zero(t, y)
	})

	t.Run("vertical offset clamps past the action count", func(t *testing.T) {
		s := newTestSession(t, "/in/one.png", "/in/two.png")
		s.Skip()
		s.Skip()

		for i := 0; i < 20; i++ {
			s.ScrollDown()
		}

		_, y := s.ScrollOffset()
		assert.Equal(t, len(s.Actions())+3, y)
	})

	t.Run("horizontal offset has no upper bound", func(t *testing.T) {
		s := newTestSession(t, "/in/one.png")
		for i := 0; i < 200; i++ {
			s.ScrollRight()
		}

		x, _ := s.ScrollOffset()
		assert.Equal(t, 200, x)
	})

	t.Run("undo keeps the vertical offset within bounds", func(t *testing.T) {
		s := newTestSession(t, "/in/one.png", "/in/two.png")
		s.Skip()
		s.Skip()
		for i := 0; i < 10; i++ {
			s.ScrollDown()
		}

		s.Undo()
		s.Undo()

		_, y := s.ScrollOffset()
		assert.LessOrEqual(t, y, len(s.Actions())+3)
	})
}

func TestSessionSaveScript(t *testing.T) {
	t.Run("save writes the script and stamps the time", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "out.sh")
		s := review.New([]string{"/in/cat.jpg"}, map[rune]string{'a': "/pics/animals"}, []string{"/pics/animals"}, output)
		require.NoError(t, s.MoveTo('a'))

		require.True(t, s.LastSave().IsZero())
		before := time.Now()
		require.NoError(t, s.SaveScript())

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "#!/bin/sh\nmkdir -p \"/pics/animals\"\nmv \"/in/cat.jpg\" \"/pics/animals\"", string(data))
		assert.False(t, s.LastSave().Before(before))
	})

	t.Run("failed save leaves the timestamp untouched", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "missing", "out.sh")
		s := review.New([]string{"/in/cat.jpg"}, nil, nil, output)

		require.Error(t, s.SaveScript())
		assert.True(t, s.LastSave().IsZero())
	})
}

func TestSessionBindingList(t *testing.T) {
	s := review.New(nil, map[rune]string{'v': "/pics/vacation", 'a': "/pics/animals"}, nil, "out.sh")

	list := s.BindingList()
	require.Len(t, list, 2)
	assert.Equal(t, types.Binding{Key: 'a', Target: "/pics/animals"}, list[0])
	assert.Equal(t, types.Binding{Key: 'v', Target: "/pics/vacation"}, list[1])
}
