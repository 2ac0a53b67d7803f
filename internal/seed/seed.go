// Package seed generates demo preference profiles for local runs.
package seed

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/okian/kindred/internal/domain/vector"
	"github.com/okian/kindred/pkg/logger"
)

// componentSteps is the number of one-decimal steps in [0, 5].
const componentSteps = 51

// Putter is the store surface the seeder needs.
type Putter interface {
	PutVector(ctx context.Context, entityID string, v vector.Vector) error
}

// randomComponent returns a one-decimal value in [0.0, 5.0] using crypto/rand.
func randomComponent() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(componentSteps))
	return float64(n.Int64()) / 10
}

// randomVector builds a full-dimension preference vector.
func randomVector() vector.Vector {
	v := make(vector.Vector, vector.Dimension)
	for i := range v {
		v[i] = randomComponent()
	}
	return v
}

// Load inserts count generated profiles with unique entity IDs and returns
// how many were stored.
func Load(ctx context.Context, store Putter, count int) (int, error) {
	logger.Get().Info(ctx, "generating demo profiles", logger.Int("count", count))

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		id := uuid.New().String()
		if err := store.PutVector(ctx, id, randomVector()); err != nil {
			return i, fmt.Errorf("seeding profile %d: %w", i, err)
		}
	}
	return count, nil
}
