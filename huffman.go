package vlc

import (
	"container/heap"
	"math"

	"github.com/pkg/errors"
)

// Weight is a symbol with its frequency or probability.
type Weight[S comparable] struct {
	Symbol S
	Weight float64
}

type huffmanNode[S comparable] struct {
	symbol S
	weight float64
	leaf   bool
	left   *huffmanNode[S]
	right  *huffmanNode[S]

	// rank orders nodes of equal weight. Leaves keep their input index,
	// merged nodes get decreasing negative ranks so the newest one wins.
	rank int
}

type huffmanQueue[S comparable] []*huffmanNode[S]

func (q huffmanQueue[S]) Len() int {
	return len(q)
}

func (q huffmanQueue[S]) Less(i, j int) bool {
	if q[i].weight != q[j].weight {
		return q[i].weight < q[j].weight
	}
	return q[i].rank < q[j].rank
}

func (q huffmanQueue[S]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *huffmanQueue[S]) Push(x any) {
	*q = append(*q, x.(*huffmanNode[S]))
}

func (q *huffmanQueue[S]) Pop() any {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return node
}

// buildHuffmanTree merges the two lightest nodes until one remains.
// Ties resolve the same way as re-sorting a list stably after inserting
// every merged node at its front.
func buildHuffmanTree[S comparable](alphabet []Weight[S]) *huffmanNode[S] {
	q := make(huffmanQueue[S], len(alphabet))
	for i, w := range alphabet {
		q[i] = &huffmanNode[S]{symbol: w.Symbol, weight: w.Weight, leaf: true, rank: i}
	}
	heap.Init(&q)

	merged := 0
	for 1 < q.Len() {
		a := heap.Pop(&q).(*huffmanNode[S])
		b := heap.Pop(&q).(*huffmanNode[S])
		merged += 1
		heap.Push(&q, &huffmanNode[S]{
			weight: a.weight + b.weight,
			left:   a,
			right:  b,
			rank:   -merged,
		})
	}
	return q[0]
}

func huffmanCodes[S comparable](node *huffmanNode[S], prefix Bits, table map[S]Bits) {
	if node.leaf {
		table[node.symbol] = prefix.Clone()
		return
	}
	huffmanCodes(node.left, append(prefix, false), table)
	huffmanCodes(node.right, append(prefix, true), table)
}

// HuffmanTable builds the prefix code table for alphabet.
// Descending to the first merged child appends 0, to the second appends 1.
// A single symbol alphabet gets the one bit code 0.
func HuffmanTable[S comparable](alphabet []Weight[S]) (map[S]Bits, error) {
	if len(alphabet) == 0 {
		return nil, errors.WithStack(ErrEmptyAlphabet)
	}
	seen := make(map[S]struct{}, len(alphabet))
	for _, w := range alphabet {
		if _, ok := seen[w.Symbol]; ok {
			return nil, errors.Wrapf(ErrDuplicate, "symbol %v", w.Symbol)
		}
		seen[w.Symbol] = struct{}{}
		if math.IsNaN(w.Weight) || math.IsInf(w.Weight, 0) || w.Weight <= 0 {
			return nil, errors.Wrapf(ErrInvalidWeight, "symbol %v weight %v", w.Symbol, w.Weight)
		}
	}

	root := buildHuffmanTree(alphabet)
	table := make(map[S]Bits, len(alphabet))
	if root.leaf {
		table[root.symbol] = Bits{false}
		return table, nil
	}
	huffmanCodes(root, make(Bits, 0, len(alphabet)), table)
	return table, nil
}

// Huffman is a TableCodec whose table is the Huffman code of a weighted alphabet.
type Huffman[S comparable] struct {
	*TableCodec[S]
}

// NewHuffman builds the code for alphabet. The order of alphabet decides
// which of two equally weighted symbols is merged first.
func NewHuffman[S comparable](alphabet []Weight[S]) (*Huffman[S], error) {
	table, err := HuffmanTable(alphabet)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	tc, err := NewTableCodec(table)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &Huffman[S]{tc}, nil
}
