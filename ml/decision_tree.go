package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// DecisionTree is a fitted binary tree stored as a flat node array. Node 0 is
// the root; each leaf holds the class distribution of its training samples.
type DecisionTree struct {
	Features int        `json:"n_features"`
	Nodes    []TreeNode `json:"nodes"`
}

type TreeNode struct {
	FeatureIdx int       `json:"feature_idx"`
	Threshold  float64   `json:"threshold"`
	LeftChild  int       `json:"left_child"`
	RightChild int       `json:"right_child"`
	IsLeaf     bool      `json:"is_leaf"`
	Proba      []float64 `json:"proba,omitempty"`
}

func (dt *DecisionTree) PredictProba(features []float64) ([]float64, error) {
	if len(dt.Nodes) == 0 {
		return nil, errors.New("model not loaded")
	}
	if len(features) != dt.Features {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFeatureCount, len(features), dt.Features)
	}
	idx := 0
	for steps := 0; steps <= len(dt.Nodes); steps++ {
		node := dt.Nodes[idx]
		if node.IsLeaf {
			return append([]float64(nil), node.Proba...), nil
		}
		if features[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
	}
	return nil, errors.New("invalid tree state")
}

func (dt *DecisionTree) NumFeatures() int {
	return dt.Features
}

func (dt *DecisionTree) Load(path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var tree DecisionTree
	if err := json.Unmarshal(payload, &tree); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	if err := tree.validate(); err != nil {
		return err
	}
	*dt = tree
	return nil
}

func (dt *DecisionTree) validate() error {
	if len(dt.Nodes) == 0 {
		return fmt.Errorf("%w: tree has no nodes", ErrInvalidModel)
	}
	if dt.Features <= 0 {
		return fmt.Errorf("%w: n_features must be positive", ErrInvalidModel)
	}
	for i, node := range dt.Nodes {
		if node.IsLeaf {
			if len(node.Proba) != 2 {
				return fmt.Errorf("%w: leaf %d needs 2 class probabilities, got %d", ErrInvalidModel, i, len(node.Proba))
			}
			if sum := node.Proba[0] + node.Proba[1]; math.Abs(sum-1) > 1e-6 {
				return fmt.Errorf("%w: leaf %d probabilities sum to %v", ErrInvalidModel, i, sum)
			}
			continue
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= dt.Features {
			return fmt.Errorf("%w: node %d feature index %d out of range", ErrInvalidModel, i, node.FeatureIdx)
		}
		if !validChild(node.LeftChild, i, len(dt.Nodes)) || !validChild(node.RightChild, i, len(dt.Nodes)) {
			return fmt.Errorf("%w: node %d has invalid children", ErrInvalidModel, i)
		}
	}
	return nil
}

// children are stored after their parent, which rules out cycles
func validChild(child, parent, n int) bool {
	return child > parent && child < n
}
