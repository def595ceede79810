// internal/model/forest.go
package model

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// ForestParams holds the random-forest hyperparameters.
type ForestParams struct {
	Trees           int   `json:"trees"`
	MaxDepth        int   `json:"max_depth"`
	MinSamplesSplit int   `json:"min_samples_split"`
	MinSamplesLeaf  int   `json:"min_samples_leaf"`
	Seed            int64 `json:"seed"`
}

// DefaultForestParams mirrors the parameters the artifact lineage was tuned
// with for the 38-career label set.
func DefaultForestParams() ForestParams {
	return ForestParams{
		Trees:           100,
		MaxDepth:        12,
		MinSamplesSplit: 8,
		MinSamplesLeaf:  4,
		Seed:            42,
	}
}

// treeNode is one node of a fitted decision tree, flattened for
// serialization. A non-nil Dist marks a leaf; internal nodes route on
// x[Feature] <= Threshold.
type treeNode struct {
	Feature   int       `json:"f"`
	Threshold float64   `json:"t"`
	Left      int       `json:"l"`
	Right     int       `json:"r"`
	Dist      []float64 `json:"d,omitempty"`
}

type decisionTree struct {
	Nodes []treeNode `json:"nodes"`
}

// RandomForest is a bagged ensemble of CART trees with per-split feature
// subsampling (sqrt of the feature count). It satisfies Classifier.
type RandomForest struct {
	Params   ForestParams   `json:"params"`
	Classes  int            `json:"classes"`
	Features int            `json:"features"`
	Trees    []decisionTree `json:"trees"`
}

func NewRandomForest(params ForestParams) *RandomForest {
	return &RandomForest{Params: params}
}

// Fit trains the ensemble. Each tree sees a bootstrap sample of the rows.
// Deterministic for a fixed Params.Seed.
func (f *RandomForest) Fit(rows [][]float64, labels []int, classes int) error {
	if len(rows) == 0 {
		return fmt.Errorf("no training rows")
	}
	if len(rows) != len(labels) {
		return fmt.Errorf("rows/labels length mismatch: %d vs %d", len(rows), len(labels))
	}
	if classes < 2 {
		return fmt.Errorf("need at least 2 classes, got %d", classes)
	}

	f.Classes = classes
	f.Features = len(rows[0])
	f.Trees = make([]decisionTree, 0, f.Params.Trees)

	rng := rand.New(rand.NewSource(f.Params.Seed))
	mtry := int(math.Ceil(math.Sqrt(float64(f.Features))))

	b := &treeBuilder{
		rows:    rows,
		labels:  labels,
		classes: classes,
		params:  f.Params,
		mtry:    mtry,
		rng:     rng,
	}

	n := len(rows)
	for t := 0; t < f.Params.Trees; t++ {
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.Intn(n)
		}
		tree := decisionTree{}
		b.tree = &tree
		b.grow(sample, 0)
		f.Trees = append(f.Trees, tree)
	}
	return nil
}

// PredictProba averages the leaf class distributions across all trees.
func (f *RandomForest) PredictProba(x []float64) []float64 {
	probs := make([]float64, f.Classes)
	if len(f.Trees) == 0 {
		return probs
	}
	for _, tree := range f.Trees {
		node := &tree.Nodes[0]
		for node.Dist == nil {
			if x[node.Feature] <= node.Threshold {
				node = &tree.Nodes[node.Left]
			} else {
				node = &tree.Nodes[node.Right]
			}
		}
		for i, p := range node.Dist {
			probs[i] += p
		}
	}
	inv := 1.0 / float64(len(f.Trees))
	for i := range probs {
		probs[i] *= inv
	}
	return probs
}

// IsTrained reports whether Fit has completed.
func (f *RandomForest) IsTrained() bool {
	return len(f.Trees) > 0
}

type treeBuilder struct {
	rows    [][]float64
	labels  []int
	classes int
	params  ForestParams
	mtry    int
	rng     *rand.Rand
	tree    *decisionTree
}

// grow appends the subtree for the given sample indices and returns its
// root's node index.
func (b *treeBuilder) grow(idx []int, depth int) int {
	counts := make([]int, b.classes)
	for _, i := range idx {
		counts[b.labels[i]]++
	}

	if depth >= b.params.MaxDepth || len(idx) < b.params.MinSamplesSplit || isPure(counts) {
		return b.leaf(counts, len(idx))
	}

	feat, threshold, ok := b.bestSplit(idx, counts)
	if !ok {
		return b.leaf(counts, len(idx))
	}

	var left, right []int
	for _, i := range idx {
		if b.rows[i][feat] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	nodeIdx := len(b.tree.Nodes)
	b.tree.Nodes = append(b.tree.Nodes, treeNode{Feature: feat, Threshold: threshold})
	l := b.grow(left, depth+1)
	r := b.grow(right, depth+1)
	b.tree.Nodes[nodeIdx].Left = l
	b.tree.Nodes[nodeIdx].Right = r
	return nodeIdx
}

func (b *treeBuilder) leaf(counts []int, total int) int {
	dist := make([]float64, b.classes)
	if total > 0 {
		for i, c := range counts {
			dist[i] = float64(c) / float64(total)
		}
	}
	b.tree.Nodes = append(b.tree.Nodes, treeNode{Feature: -1, Dist: dist})
	return len(b.tree.Nodes) - 1
}

// bestSplit scans a random feature subset for the threshold with the largest
// gini impurity decrease, honoring the minimum leaf size on both sides.
func (b *treeBuilder) bestSplit(idx []int, counts []int) (int, float64, bool) {
	n := len(idx)
	parentGini := gini(counts, n)

	features := b.rng.Perm(len(b.rows[0]))[:b.mtry]

	bestGain := 1e-9
	bestFeat := -1
	bestThreshold := 0.0

	sorted := make([]int, n)
	leftCounts := make([]int, b.classes)

	for _, feat := range features {
		copy(sorted, idx)
		sort.Slice(sorted, func(i, j int) bool {
			return b.rows[sorted[i]][feat] < b.rows[sorted[j]][feat]
		})

		for i := range leftCounts {
			leftCounts[i] = 0
		}

		for i := 0; i < n-1; i++ {
			leftCounts[b.labels[sorted[i]]]++
			nl := i + 1
			nr := n - nl
			if nl < b.params.MinSamplesLeaf || nr < b.params.MinSamplesLeaf {
				continue
			}
			v, next := b.rows[sorted[i]][feat], b.rows[sorted[i+1]][feat]
			if v == next {
				continue
			}

			rightCounts := make([]int, b.classes)
			for c := range rightCounts {
				rightCounts[c] = counts[c] - leftCounts[c]
			}
			weighted := (float64(nl)*gini(leftCounts, nl) + float64(nr)*gini(rightCounts, nr)) / float64(n)
			gain := parentGini - weighted
			if gain > bestGain {
				bestGain = gain
				bestFeat = feat
				bestThreshold = (v + next) / 2
			}
		}
	}

	if bestFeat < 0 {
		return 0, 0, false
	}
	return bestFeat, bestThreshold, true
}

func gini(counts []int, total int) float64 {
	if total == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		sum += p * p
	}
	return 1 - sum
}

func isPure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}
