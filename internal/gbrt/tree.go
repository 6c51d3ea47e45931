package gbrt

import "sort"

// Node é um nó de uma árvore de regressão. Nós internos dividem pelo
// par (Feature, Threshold); folhas carregam o valor previsto.
type Node struct {
	Feature   int     `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      *Node   `json:"left,omitempty"`
	Right     *Node   `json:"right,omitempty"`
	Value     float64 `json:"value,omitempty"`
	Leaf      bool    `json:"leaf,omitempty"`
}

func (n *Node) predict(features []float64) float64 {
	node := n
	for !node.Leaf {
		if features[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}

	return node.Value
}

// treeBuilder ajusta uma árvore de regressão por busca exaustiva do
// melhor corte (menor soma dos erros quadráticos nos dois lados).
type treeBuilder struct {
	x        [][]float64
	target   []float64
	maxDepth int
	minLeaf  int

	// ganho de erro quadrático acumulado por variável
	importance []float64
}

func (tb *treeBuilder) build(indices []int, depth int) *Node {
	if depth >= tb.maxDepth || len(indices) < 2*tb.minLeaf {
		return &Node{Leaf: true, Value: tb.meanAt(indices)}
	}

	feature, threshold, gain, ok := tb.bestSplit(indices)
	if !ok {
		return &Node{Leaf: true, Value: tb.meanAt(indices)}
	}

	tb.importance[feature] += gain

	left := make([]int, 0, len(indices))
	right := make([]int, 0, len(indices))
	for _, i := range indices {
		if tb.x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	return &Node{
		Feature:   feature,
		Threshold: threshold,
		Left:      tb.build(left, depth+1),
		Right:     tb.build(right, depth+1),
	}
}

// bestSplit procura, entre todas as variáveis, o corte que mais reduz a
// soma dos erros quadráticos, respeitando o mínimo de amostras por folha.
func (tb *treeBuilder) bestSplit(indices []int) (feature int, threshold, gain float64, ok bool) {
	n := len(indices)
	if n < 2*tb.minLeaf {
		return 0, 0, 0, false
	}

	parentSSE := tb.sseAt(indices)

	type pair struct {
		value  float64
		target float64
	}
	pairs := make([]pair, n)

	const minGain = 1e-12
	bestGain := minGain

	for f := 0; f < len(tb.x[indices[0]]); f++ {
		for i, idx := range indices {
			pairs[i] = pair{value: tb.x[idx][f], target: tb.target[idx]}
		}
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].value < pairs[j].value })

		// Varredura com somas acumuladas do lado esquerdo
		var sumLeft, sumSqLeft float64
		var sumTotal, sumSqTotal float64
		for _, p := range pairs {
			sumTotal += p.target
			sumSqTotal += p.target * p.target
		}

		for i := 1; i < n; i++ {
			prev := pairs[i-1]
			sumLeft += prev.target
			sumSqLeft += prev.target * prev.target

			if prev.value == pairs[i].value {
				continue
			}
			if i < tb.minLeaf || n-i < tb.minLeaf {
				continue
			}

			nl, nr := float64(i), float64(n-i)
			sseLeft := sumSqLeft - sumLeft*sumLeft/nl
			sumRight := sumTotal - sumLeft
			sseRight := (sumSqTotal - sumSqLeft) - sumRight*sumRight/nr

			if g := parentSSE - (sseLeft + sseRight); g > bestGain {
				bestGain = g
				feature = f
				threshold = (prev.value + pairs[i].value) / 2
				ok = true
			}
		}
	}

	if !ok {
		return 0, 0, 0, false
	}

	return feature, threshold, bestGain, true
}

func (tb *treeBuilder) meanAt(indices []int) float64 {
	if len(indices) == 0 {
		return 0
	}

	var sum float64
	for _, i := range indices {
		sum += tb.target[i]
	}

	return sum / float64(len(indices))
}

func (tb *treeBuilder) sseAt(indices []int) float64 {
	var sum, sumSq float64
	for _, i := range indices {
		t := tb.target[i]
		sum += t
		sumSq += t * t
	}

	return sumSq - sum*sum/float64(len(indices))
}
