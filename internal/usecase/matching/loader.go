package matching

import (
	"context"
	"time"

	"github.com/gdugdh24/reunion-backend/internal/domain"
	"github.com/gdugdh24/reunion-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"
)

type targetPeopleLoader = dataloader.Loader[uuid.UUID, []domain.TargetPerson]

// newTargetPeopleLoader batches per-candidate target people lookups into one query.
// Loaders cache results, so one is built per search.
func newTargetPeopleLoader(repo repository.TargetPersonRepository, wait time.Duration) *targetPeopleLoader {
	return dataloader.NewBatchedLoader(
		targetPeopleBatchFn(repo),
		dataloader.WithWait[uuid.UUID, []domain.TargetPerson](wait),
	)
}

func targetPeopleBatchFn(repo repository.TargetPersonRepository) dataloader.BatchFunc[uuid.UUID, []domain.TargetPerson] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.TargetPerson] {
		results := make([]*dataloader.Result[[]domain.TargetPerson], len(keys))

		grouped, err := repo.ListByUserIDs(ctx, keys)
		for i, key := range keys {
			if err != nil {
				results[i] = &dataloader.Result[[]domain.TargetPerson]{Error: err}
				continue
			}
			results[i] = &dataloader.Result[[]domain.TargetPerson]{Data: grouped[key]}
		}
		return results
	}
}
