package core

import (
	"fmt"
	"sync"
)

var (
	regMu    sync.RWMutex
	builders = map[string]Builder{}
)

func RegisterBuilder(typ string, b Builder) {
	regMu.Lock()
	defer regMu.Unlock()
	if _, exists := builders[typ]; exists {
		panic(fmt.Sprintf("duplicate device builder: %s", typ))
	}
	builders[typ] = b
}

// LookupBuilder returns the builder registered for a device type.
func LookupBuilder(typ string) (Builder, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	b, ok := builders[typ]
	return b, ok
}
