package filter

import (
	"container/list"
	"sync"

	"github.com/expr-lang/expr/vm"
)

// programCache is a thread-safe LRU of compiled programs keyed by expression
type programCache struct {
	size  int
	order *list.List
	items map[string]*list.Element
	mu    sync.Mutex
}

type cached struct {
	expression string
	program    *vm.Program
}

func newProgramCache(size int) *programCache {
	return &programCache{
		size:  size,
		order: list.New(),
		items: make(map[string]*list.Element),
	}
}

// Get returns the program compiled from expression, marking it recently used
func (c *programCache) Get(expression string) (*vm.Program, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.items[expression]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(node)
	return node.Value.(*cached).program, true
}

// Put stores program, evicting the least recently used entry when full
func (c *programCache) Put(expression string, program *vm.Program) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.items[expression]; ok {
		c.order.MoveToFront(node)
		node.Value.(*cached).program = program
		return
	}

	c.items[expression] = c.order.PushFront(&cached{expression: expression, program: program})

	if c.order.Len() > c.size {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cached).expression)
	}
}

// Len returns the number of cached programs
func (c *programCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
