package mcts

import (
	"fmt"
	"math/rand"

	"github.com/IlikeChooros/go-mcts-2048/pkg/grid"
)

const (
	ExpandedMask uint32 = 1
	TerminalMask uint32 = 2
)

// Node of the search tree. It owns its state snapshot and its children;
// there is no parent pointer, selection hands out the path from the root.
type Node struct {
	NodeStats
	Move     grid.Direction // grid.NoDirection for the root
	State    grid.State
	Children []Node
	Flags    uint32
}

func newRootNode(state grid.State) *Node {
	return &Node{
		Move:  grid.NoDirection,
		State: state.Clone(),
		Flags: TerminalFlag(state.Terminal()),
	}
}

func NewNode(move grid.Direction, state grid.State) Node {
	return Node{
		Move:  move,
		State: state,
		Flags: TerminalFlag(state.Terminal()),
	}
}

func TerminalFlag(terminal bool) uint32 {
	if terminal {
		return TerminalMask
	}
	return 0
}

// No direction changes this node's board
func (node *Node) Terminal() bool {
	return node.Flags&TerminalMask == TerminalMask
}

// Children were materialized for every non no-op direction
func (node *Node) Expanded() bool {
	return node.Flags&ExpandedMask == ExpandedMask
}

// Materialize one child per direction that changes the board, drawing the
// spawned tile from rng. Returns the number of new children. A node without
// successors becomes terminal and is never expanded again.
func (node *Node) Expand(rng *rand.Rand) uint32 {
	if node.Expanded() || node.Terminal() {
		return 0
	}

	node.Children = make([]Node, 0, len(grid.Directions))
	for _, dir := range grid.Directions {
		if next, ok := node.State.Successor(dir, rng); ok {
			node.Children = append(node.Children, NewNode(dir, next))
		}
	}

	if len(node.Children) == 0 {
		node.Children = nil
		node.Flags |= TerminalMask
		return 0
	}
	node.Flags |= ExpandedMask
	return uint32(len(node.Children))
}

// Child tagged with dir, nil if there is none
func (node *Node) Child(dir grid.Direction) *Node {
	for i := range node.Children {
		if node.Children[i].Move == dir {
			return &node.Children[i]
		}
	}
	return nil
}

func (node *Node) String() string {
	return fmt.Sprintf("Node{Move=%v, N=%d, Avg=%.1f, Children=%d, Terminal=%v}",
		node.Move, node.N(), node.AvgQ(), len(node.Children), node.Terminal())
}

// Helper function to count tree nodes
func countTreeNodes(node *Node) int {
	nodes := 1
	for i := range node.Children {
		nodes += countTreeNodes(&node.Children[i])
	}
	return nodes
}
