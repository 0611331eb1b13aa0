package collaborator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tdex-network/mvs-vault/internal/core/ports"
)

// ErrInvalidPlugin is returned when storing a plugin that is not a JSON
// object.
var ErrInvalidPlugin = errors.New("plugin must be a JSON object")

type pluginService struct {
	store ports.KVStore
}

// NewPluginService returns a ports.PluginService persisting the installed
// plugins in the given store. Every plugin must be a JSON object.
func NewPluginService(store ports.KVStore) ports.PluginService {
	return &pluginService{store}
}

func (p *pluginService) GetPlugins(
	ctx context.Context,
) ([]json.RawMessage, error) {
	return getList(ctx, p.store, ports.PluginsKey)
}

func (p *pluginService) SetPlugins(
	ctx context.Context, plugins []json.RawMessage,
) error {
	for i, plugin := range plugins {
		var obj map[string]interface{}
		if err := json.Unmarshal(plugin, &obj); err != nil || obj == nil {
			return fmt.Errorf("%w: index %d", ErrInvalidPlugin, i)
		}
	}
	return setList(ctx, p.store, ports.PluginsKey, plugins)
}
