package forest

import (
	"math/rand"
	"sort"
)

// node is one decision node. Leaves predict the mean target of the training
// samples that reached them.
type node struct {
	feature   int
	threshold float64
	left      *node
	right     *node
	value     float64
	leaf      bool
}

func (n *node) predict(v []float64) float64 {
	for !n.leaf {
		if v[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}

// buildTree grows a regression tree over the sample indices using variance
// reduction splits. mtry features are drawn per node without replacement.
func buildTree(features [][]float64, targets []float64, idx []int, depth, maxDepth, minLeaf, mtry int, rng *rand.Rand) *node {
	if len(idx) <= minLeaf || depth >= maxDepth || constantTargets(targets, idx) {
		return leafNode(targets, idx)
	}

	feat, threshold, ok := bestSplit(features, targets, idx, mtry, rng)
	if !ok {
		return leafNode(targets, idx)
	}

	var left, right []int
	for _, i := range idx {
		if features[i][feat] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return leafNode(targets, idx)
	}

	return &node{
		feature:   feat,
		threshold: threshold,
		left:      buildTree(features, targets, left, depth+1, maxDepth, minLeaf, mtry, rng),
		right:     buildTree(features, targets, right, depth+1, maxDepth, minLeaf, mtry, rng),
	}
}

func leafNode(targets []float64, idx []int) *node {
	var sum float64
	for _, i := range idx {
		sum += targets[i]
	}
	return &node{leaf: true, value: sum / float64(len(idx))}
}

func constantTargets(targets []float64, idx []int) bool {
	first := targets[idx[0]]
	for _, i := range idx[1:] {
		if targets[i] != first {
			return false
		}
	}
	return true
}

// bestSplit scans a random feature subset for the threshold that minimizes
// the summed squared error of the two sides. Thresholds are midpoints between
// consecutive distinct sorted values.
func bestSplit(features [][]float64, targets []float64, idx []int, mtry int, rng *rand.Rand) (int, float64, bool) {
	nFeatures := len(features[idx[0]])
	candidates := rng.Perm(nFeatures)[:mtry]

	bestSSE := sse(targets, idx)
	bestFeat, bestThreshold := -1, 0.0

	sorted := make([]int, len(idx))
	for _, feat := range candidates {
		copy(sorted, idx)
		sort.Slice(sorted, func(a, b int) bool {
			return features[sorted[a]][feat] < features[sorted[b]][feat]
		})

		var total, totalSq float64
		for _, i := range sorted {
			total += targets[i]
			totalSq += targets[i] * targets[i]
		}

		var leftSum, leftSq float64
		n := float64(len(sorted))
		for k := 0; k < len(sorted)-1; k++ {
			t := targets[sorted[k]]
			leftSum += t
			leftSq += t * t

			cur := features[sorted[k]][feat]
			next := features[sorted[k+1]][feat]
			if cur == next {
				continue
			}

			nl := float64(k + 1)
			nr := n - nl
			rightSum := total - leftSum
			rightSq := totalSq - leftSq
			splitSSE := (leftSq - leftSum*leftSum/nl) + (rightSq - rightSum*rightSum/nr)
			if splitSSE < bestSSE {
				bestSSE = splitSSE
				bestFeat = feat
				bestThreshold = (cur + next) / 2
			}
		}
	}

	if bestFeat < 0 {
		return 0, 0, false
	}
	return bestFeat, bestThreshold, true
}

func sse(targets []float64, idx []int) float64 {
	var sum, sumSq float64
	for _, i := range idx {
		sum += targets[i]
		sumSq += targets[i] * targets[i]
	}
	return sumSq - sum*sum/float64(len(idx))
}
