package client

import "sync"

// Credential holds the bearer token attached to outgoing requests.
// The zero value is empty and ready to use. It is safe for concurrent use.
type Credential struct {
	mu    sync.RWMutex
	token string
}

func (c *Credential) Get() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Credential) Set(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Credential) Clear() {
	c.Set("")
}
