package ui

import (
	"sort"
	"strings"
	"sync"
)

// Node is an in-memory Element. It is safe for concurrent use, which lets
// request callbacks running on other goroutines update it.
type Node struct {
	mu      sync.RWMutex
	classes map[string]struct{}
	attrs   map[string]string
	text    string
	hidden  bool
}

// NewNode creates a visible node with the given classes
func NewNode(classes ...string) *Node {
	n := &Node{
		classes: make(map[string]struct{}),
		attrs:   make(map[string]string),
	}
	n.AddClass(classes...)
	return n
}

func (n *Node) AddClass(names ...string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, name := range names {
		for _, c := range strings.Fields(name) {
			n.classes[c] = struct{}{}
		}
	}
}

func (n *Node) RemoveClass(names ...string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, name := range names {
		for _, c := range strings.Fields(name) {
			delete(n.classes, c)
		}
	}
}

func (n *Node) HasClass(name string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.classes[name]
	return ok
}

// Classes returns the class list in sorted order
func (n *Node) Classes() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]string, 0, len(n.classes))
	for c := range n.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (n *Node) SetText(text string) {
	n.mu.Lock()
	n.text = text
	n.mu.Unlock()
}

func (n *Node) Text() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.text
}

func (n *Node) SetAttr(name, value string) {
	n.mu.Lock()
	n.attrs[name] = value
	n.mu.Unlock()
}

func (n *Node) RemoveAttr(name string) {
	n.mu.Lock()
	delete(n.attrs, name)
	n.mu.Unlock()
}

func (n *Node) Attr(name string) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	v, ok := n.attrs[name]
	return v, ok
}

func (n *Node) Show() {
	n.mu.Lock()
	n.hidden = false
	n.mu.Unlock()
}

func (n *Node) Hide() {
	n.mu.Lock()
	n.hidden = true
	n.mu.Unlock()
}

func (n *Node) Visible() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return !n.hidden
}

var _ Element = (*Node)(nil)
