package ports

import (
	"context"

	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/types"
)

type DirectoryStore interface {
	ListBodies(ctx context.Context) ([]types.Body, error)
	ListOfficials(ctx context.Context) ([]types.Official, error)
	ListLeadershipRows(ctx context.Context) (types.LeadershipRows, error)
}
