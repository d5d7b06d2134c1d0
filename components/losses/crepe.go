package losses

import (
	"context"
	"fmt"

	"github.com/synthlab/synthgridgo/internal/registry"
)

// PretrainedCREPEEmbeddingLoss compares audio in the embedding space of a
// pretrained CREPE pitch network. The checkpoint it loads from must be
// reachable at load time.
type PretrainedCREPEEmbeddingLoss struct {
	Weight        float64
	ModelCapacity string
	Checkpoint    string
}

// LossName implements the Loss interface.
func (l *PretrainedCREPEEmbeddingLoss) LossName() string {
	return "pretrained_crepe_embedding_loss"
}

// CheckpointRefs reports the checkpoint path for reachability probing.
func (l *PretrainedCREPEEmbeddingLoss) CheckpointRefs() []string {
	return []string{l.Checkpoint}
}

type crepeLossParams struct {
	Weight        float64 `sggo:"weight"`
	ModelCapacity string  `sggo:"model_capacity"`
	Checkpoint    string  `sggo:"checkpoint"`
}

func constructCrepeLoss(ctx context.Context, b registry.Builder, params any) (any, error) {
	p := params.(*crepeLossParams)

	if p.Weight < 0 {
		return nil, fmt.Errorf("weight must be >= 0, got %v", p.Weight)
	}
	switch p.ModelCapacity {
	case "tiny", "small", "medium", "large", "full":
	default:
		return nil, fmt.Errorf("model_capacity must be one of tiny, small, medium, large or full, got %q", p.ModelCapacity)
	}
	if p.Checkpoint == "" {
		return nil, fmt.Errorf("checkpoint must not be empty")
	}

	return &PretrainedCREPEEmbeddingLoss{
		Weight:        p.Weight,
		ModelCapacity: p.ModelCapacity,
		Checkpoint:    p.Checkpoint,
	}, nil
}
