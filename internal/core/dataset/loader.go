package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zeebo/xxh3"

	"github.com/epmviz/backend/internal/core/trajectory"
)

// Digest fingerprints a raw dataset document.
func Digest(raw []byte) string {
	return fmt.Sprintf("%016x", xxh3.Hash(raw))
}

type Loaded struct {
	Dataset   *trajectory.Dataset
	Digest    string
	Location  string
	FetchedAt time.Time
}

// Load fetches and decodes the dataset for model. Failures are not retried.
func Load(ctx context.Context, src Source, model string) (*Loaded, error) {
	start := time.Now()
	raw, err := src.Fetch(ctx, model)
	if err != nil {
		log.Warn().
			Str("evt.name", "dataset.fetch").
			Str("location", src.Location()).
			Str("model", model).
			Err(err).
			Msg("failed to fetch dataset")
		return nil, err
	}

	ds, err := Decode(raw)
	if err != nil {
		log.Warn().
			Str("evt.name", "dataset.decode").
			Str("location", src.Location()).
			Err(err).
			Msg("fetched dataset is invalid")
		return nil, err
	}

	loaded := &Loaded{
		Dataset:   ds,
		Digest:    Digest(raw),
		Location:  src.Location(),
		FetchedAt: time.Now(),
	}

	log.Debug().
		Str("evt.name", "dataset.loaded").
		Str("location", loaded.Location).
		Str("digest", loaded.Digest).
		Int("trajectories", len(ds.Trajectories)).
		Int("turns", ds.Metadata.MaxTurns).
		Dur("duration", time.Since(start)).
		Msg("dataset loaded")

	return loaded, nil
}
