package plugin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingPlugin struct {
	name    string
	initErr error
	log     *[]string
}

func (p *recordingPlugin) Name() string { return p.name }

func (p *recordingPlugin) Initialize(EditorAPI) error {
	*p.log = append(*p.log, "init "+p.name)
	return p.initErr
}

func (p *recordingPlugin) Shutdown() error {
	*p.log = append(*p.log, "shutdown "+p.name)
	return nil
}

func TestRegisterRejectsDuplicatesAndEmpty(t *testing.T) {
	var log []string
	m := NewManager()
	require.NoError(t, m.Register(&recordingPlugin{name: "wc", log: &log}))
	require.Error(t, m.Register(&recordingPlugin{name: "wc", log: &log}))
	require.Error(t, m.Register(&recordingPlugin{name: "", log: &log}))

	_, ok := m.GetPlugin("wc")
	require.True(t, ok)
	require.Equal(t, []string{"wc"}, m.Names())
}

func TestLifecycleOrder(t *testing.T) {
	var log []string
	m := NewManager()
	require.NoError(t, m.Register(&recordingPlugin{name: "b", log: &log}))
	require.NoError(t, m.Register(&recordingPlugin{name: "a", log: &log, initErr: errors.New("boom")}))

	errs := m.InitializePlugins(nil)
	require.Len(t, errs, 1)
	require.ErrorContains(t, errs[0], "initialize a")

	m.ShutdownPlugins()
	require.Equal(t, []string{"init b", "init a", "shutdown a", "shutdown b"}, log)
}
