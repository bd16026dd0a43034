package todolist

import (
	"sync"

	"github.com/wiktorlazar/ordoai/internal/model"
)

// Cache memoizes the list state derived from a conversation so repeated
// turns do not rescan the whole history. Invalidation keys on message
// count and last message ID; the caller appends both turn halves after
// every exchange, so any change to history moves both.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	messageCount int
	lastID       string
	items        []model.TodoItem
	listType     model.ListType
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Derive returns the conversation's current items and list type,
// recomputing only when the history changed. The returned slice is a copy;
// mutating it does not poison the cache.
func (c *Cache) Derive(conv model.Conversation) ([]model.TodoItem, model.ListType) {
	lastID := ""
	if n := len(conv.Messages); n > 0 {
		lastID = conv.Messages[n-1].ID
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[conv.ID]
	if !ok || entry.messageCount != len(conv.Messages) || entry.lastID != lastID {
		entry = cacheEntry{
			messageCount: len(conv.Messages),
			lastID:       lastID,
			items:        ParseItems(conv),
			listType:     ListTypeOf(conv),
		}
		c.entries[conv.ID] = entry
	}

	items := make([]model.TodoItem, len(entry.items))
	copy(items, entry.items)
	return items, entry.listType
}

// Forget drops a conversation's cached state (deleted conversations).
func (c *Cache) Forget(conversationID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, conversationID)
}
