package autosave

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/postfmt/internal/plugin"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	plugin.EditorAPI

	modified bool
	path     string
	saves    []string
	saveErr  error
	cfg      map[string]interface{}
	commands map[string]plugin.CommandFunc
	messages []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{cfg: map[string]interface{}{}, commands: map[string]plugin.CommandFunc{}}
}

func (f *fakeAPI) IsBufferModified() bool    { return f.modified }
func (f *fakeAPI) GetBufferFilePath() string { return f.path }

func (f *fakeAPI) SaveBuffer(filePath ...string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	target := f.path
	if len(filePath) > 0 {
		target = filePath[0]
		f.path = target
	}
	f.saves = append(f.saves, target)
	f.modified = false
	return nil
}

func (f *fakeAPI) GetPluginConfig(plugin, key string) (interface{}, bool) {
	v, ok := f.cfg[key]
	return v, ok
}

func (f *fakeAPI) RegisterCommand(name string, fn plugin.CommandFunc) error {
	f.commands[name] = fn
	return nil
}

func (f *fakeAPI) SetStatusMessage(format string, args ...interface{}) {
	f.messages = append(f.messages, fmt.Sprintf(format, args...))
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		in      interface{}
		want    time.Duration
		wantErr bool
	}{
		{"30s", 30 * time.Second, false},
		{int64(5), 5 * time.Second, false},
		{10, 10 * time.Second, false},
		{"soon", 0, true},
		{"-1s", 0, true},
		{true, 0, true},
	}
	for _, tt := range tests {
		got, err := parseInterval(tt.in)
		if tt.wantErr {
			require.Error(t, err, "input %v", tt.in)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestInitializeReadsConfig(t *testing.T) {
	api := newFakeAPI()
	api.cfg["interval"] = "2m"
	api.cfg["drafts_dir"] = t.TempDir()

	p := New().(*AutoSave)
	require.NoError(t, p.Initialize(api))
	t.Cleanup(func() { _ = p.Shutdown() })

	require.False(t, p.enabled)
	require.Equal(t, 2*time.Minute, p.interval)
	require.Contains(t, api.commands, "autosave")
}

func TestSaveIfModified(t *testing.T) {
	t.Run("unmodified post is left alone", func(t *testing.T) {
		api := newFakeAPI()
		api.path = "post.md"
		p := &AutoSave{api: api}
		require.NoError(t, p.saveIfModified())
		require.Empty(t, api.saves)
	})

	t.Run("named post saves in place", func(t *testing.T) {
		api := newFakeAPI()
		api.path, api.modified = "post.md", true
		p := &AutoSave{api: api}
		require.NoError(t, p.saveIfModified())
		require.Equal(t, []string{"post.md"}, api.saves)
	})

	t.Run("unnamed post becomes one draft", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "drafts")
		api := newFakeAPI()
		api.modified = true
		p := &AutoSave{api: api, draftsDir: dir}

		require.NoError(t, p.saveIfModified())
		require.Len(t, api.saves, 1)
		require.Equal(t, dir, filepath.Dir(api.saves[0]))
		base := filepath.Base(api.saves[0])
		require.True(t, strings.HasPrefix(base, "draft-"))
		require.True(t, strings.HasSuffix(base, ".md"))
		require.DirExists(t, dir)

		api.modified = true
		require.NoError(t, p.saveIfModified())
		require.Equal(t, api.saves[0], api.saves[1])
	})

	t.Run("save error is returned", func(t *testing.T) {
		api := newFakeAPI()
		api.path, api.modified = "post.md", true
		api.saveErr = errors.New("disk full")
		p := &AutoSave{api: api}
		require.ErrorContains(t, p.saveIfModified(), "disk full")
	})
}

func TestToggleCommand(t *testing.T) {
	api := newFakeAPI()
	api.cfg["drafts_dir"] = t.TempDir()
	p := New().(*AutoSave)
	require.NoError(t, p.Initialize(api))
	t.Cleanup(func() { _ = p.Shutdown() })

	cmd := api.commands["autosave"]
	require.NoError(t, cmd(nil))
	require.Contains(t, api.messages[len(api.messages)-1], "Autosave is off")

	require.NoError(t, cmd([]string{"on"}))
	require.True(t, p.enabled)
	require.NotNil(t, p.stopChan)

	require.NoError(t, cmd([]string{"off"}))
	require.False(t, p.enabled)
	require.Nil(t, p.stopChan)

	require.Error(t, cmd([]string{"sometimes"}))
}
