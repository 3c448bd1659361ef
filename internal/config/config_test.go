package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peoplepicker/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 300*time.Millisecond, cfg.Delay())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_file = "/tmp/people.yaml"

[ui]
delay_ms = 150
`), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/people.yaml", cfg.DataFile)
	assert.Equal(t, 150, cfg.UISettings.DelayMs)
	assert.Equal(t, "Enter a part of the name", cfg.UISettings.Placeholder)
	assert.Equal(t, 8, cfg.UISettings.MaxVisible)
	assert.True(t, cfg.UISettings.Mouse)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.UISettings.DelayMs = 50
	cfg.UISettings.Mouse = false
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"negative delay":   "[ui]\ndelay_ms = -1\n",
		"zero max visible": "[ui]\nmax_visible = 0\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))

			_, err := NewConfigService(path).Load()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\ndelay_ms = "), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadPublishesConfigLoaded(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) { got <- e })

	path := filepath.Join(t.TempDir(), "config.toml")
	_, err := NewConfigServiceWithBus(path, bus).Load()
	require.NoError(t, err)

	select {
	case e := <-got:
		ev := e.(eventbus.ConfigLoadedEvent)
		assert.Equal(t, path, ev.Path)
		assert.Equal(t, 300, ev.DelayMs)
	case <-time.After(2 * time.Second):
		t.Fatal("ConfigLoadedEvent not published")
	}
}

func TestDefaultPathUsesAppDirectory(t *testing.T) {
	assert.Equal(t, "config.toml", filepath.Base(DefaultPath()))
	assert.Equal(t, "peoplepicker", filepath.Base(filepath.Dir(DefaultPath())))
}
