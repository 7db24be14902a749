package event

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatchInOrder(t *testing.T) {
	m := NewManager()
	var calls []string
	m.Subscribe(TypeBufferModified, func(e Event) bool {
		calls = append(calls, "first:"+string(e.Data.(BufferModifiedData).Cause))
		return false
	})
	m.Subscribe(TypeBufferModified, func(e Event) bool {
		calls = append(calls, "second")
		return false
	})
	m.Subscribe(TypeThemeChanged, func(e Event) bool {
		calls = append(calls, "theme")
		return false
	})

	m.Dispatch(TypeBufferModified, BufferModifiedData{Cause: CauseStyle})
	require.Equal(t, []string{"first:style", "second"}, calls)
}

func TestDispatchStopsWhenConsumed(t *testing.T) {
	m := NewManager()
	second := false
	m.Subscribe(TypeKeyPressed, func(Event) bool { return true })
	m.Subscribe(TypeKeyPressed, func(Event) bool { second = true; return false })

	m.Dispatch(TypeKeyPressed, KeyPressedData{})
	require.False(t, second)
}

func TestDispatchWithoutHandlers(t *testing.T) {
	m := NewManager()
	require.NotPanics(t, func() { m.Dispatch(TypeAppReady, AppReadyData{}) })
}

func TestHandlerMaySubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	m.Subscribe(TypeAppReady, func(Event) bool {
		m.Subscribe(TypeAppQuit, func(Event) bool { return false })
		return false
	})
	require.NotPanics(t, func() { m.Dispatch(TypeAppReady, nil) })
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "SuggestionsUpdated", TypeSuggestionsUpdated.String())
	require.Equal(t, "Unknown", Type(999).String())
}
