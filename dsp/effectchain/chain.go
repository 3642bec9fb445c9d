package effectchain

import (
	"errors"
	"fmt"

	"github.com/remixstudio/algo-fx/dsp/effects"
)

var (
	// ErrAlreadyConnected is returned when a node is connected a second time.
	ErrAlreadyConnected = errors.New("effectchain: node already connected")
	// ErrNilNode is returned when a nil node is connected or chained.
	ErrNilNode = errors.New("effectchain: nil node")
)

// Node wraps one processor in a chain. A node is connected at most once to
// its successor and is discarded after a single render.
type Node struct {
	proc effects.Processor
	slot Slot
	next *Node
}

// NewNode wraps p. slot records which config slot it stands for; use -1
// for nodes that belong to no slot.
func NewNode(slot Slot, p effects.Processor) *Node {
	return &Node{proc: p, slot: slot}
}

// Name returns the processor name.
func (n *Node) Name() string { return n.proc.Name() }

// Slot returns the config slot the node was built from.
func (n *Node) Slot() Slot { return n.slot }

// Processor returns the wrapped processor.
func (n *Node) Processor() effects.Processor { return n.proc }

// Next returns the successor, or nil for the tail.
func (n *Node) Next() *Node { return n.next }

// Connect sets next as the successor of n.
func (n *Node) Connect(next *Node) error {
	if next == nil {
		return ErrNilNode
	}

	if n.next != nil {
		return fmt.Errorf("%w: %s -> %s", ErrAlreadyConnected, n.Name(), n.next.Name())
	}

	n.next = next

	return nil
}

// Chain is a linear list of connected nodes.
type Chain struct {
	head, tail *Node
}

// Head returns the first node.
func (c *Chain) Head() *Node { return c.head }

// Tail returns the last node.
func (c *Chain) Tail() *Node { return c.tail }

// Nodes returns the nodes from head to tail.
func (c *Chain) Nodes() []*Node {
	var out []*Node
	for n := c.head; n != nil; n = n.next {
		out = append(out, n)
		if n == c.tail {
			break
		}
	}

	return out
}

// Slots returns the slots present in the chain, head first. A pass-through
// chain has none.
func (c *Chain) Slots() []Slot {
	var out []Slot

	for _, n := range c.Nodes() {
		if n.slot >= SlotCompressor && n.slot <= SlotReverb {
			out = append(out, n.slot)
		}
	}

	return out
}

// NewChain connects nodes in the given order. With no nodes the chain is a
// single pass-through.
func NewChain(nodes ...*Node) (*Chain, error) {
	if len(nodes) == 0 {
		p := NewNode(-1, effects.NewPassthrough())
		return &Chain{head: p, tail: p}, nil
	}

	for i, n := range nodes {
		if n == nil {
			return nil, fmt.Errorf("%w at position %d", ErrNilNode, i)
		}

		if i > 0 {
			if err := nodes[i-1].Connect(n); err != nil {
				return nil, err
			}
		}
	}

	return &Chain{head: nodes[0], tail: nodes[len(nodes)-1]}, nil
}

// Assemble builds a fresh chain for cfg at the given sample rate. Only the
// enabled slots are instantiated, in canonical order. rng feeds effects
// that need noise.
func Assemble(cfg Config, sampleRate int, rng effects.RandomSource) (*Chain, error) {
	return assemble(DefaultRegistry(), cfg.Sanitize(), Context{SampleRate: float64(sampleRate), Rand: rng})
}

func assemble(reg *Registry, cfg Config, ctx Context) (*Chain, error) {
	var nodes []*Node

	for _, slot := range cfg.EnabledSlots() {
		p, err := reg.Build(slot, ctx, cfg)
		if err != nil {
			return nil, engineError("assemble", slot.String(), err)
		}

		nodes = append(nodes, NewNode(slot, p))
	}

	return NewChain(nodes...)
}
