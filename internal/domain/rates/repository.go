package rates

import "context"

type RateTableRepository interface {
	GetActive(ctx context.Context) (RateTable, error)
	Upsert(ctx context.Context, table RateTable) (RateTable, error)
}
