package ml

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadModel(t *testing.T) {
	if _, err := LoadModel(ModelTypeLogisticRegression, writeArtifact(t, "model.json", lrArtifact)); err != nil {
		t.Fatalf("logistic regression: %v", err)
	}
	if _, err := LoadModel(ModelTypeDecisionTree, writeArtifact(t, "tree.json", treeArtifact)); err != nil {
		t.Fatalf("decision tree: %v", err)
	}
}

func TestLoadModelFailures(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "model.json")
	if _, err := LoadModel(ModelTypeLogisticRegression, missing); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	if _, err := LoadModel("random_forest", missing); !errors.Is(err, ErrUnsupportedModel) {
		t.Fatalf("expected ErrUnsupportedModel, got %v", err)
	}

	twoFeatures := writeArtifact(t, "model.json", `{"coef": [[1, 1]], "intercept": [0]}`)
	if _, err := LoadModel(ModelTypeLogisticRegression, twoFeatures); !errors.Is(err, ErrFeatureCount) {
		t.Fatalf("expected ErrFeatureCount, got %v", err)
	}

	corrupt := writeArtifact(t, "model.json", "\x80\x04\x95")
	if _, err := LoadModel(ModelTypeLogisticRegression, corrupt); !errors.Is(err, ErrInvalidModel) {
		t.Fatalf("expected ErrInvalidModel, got %v", err)
	}
}
