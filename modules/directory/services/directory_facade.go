package services

import (
	"context"

	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/ports"
	"github.com/jacksonlee411/Leadership-Explorer/modules/directory/domain/types"
	"golang.org/x/sync/errgroup"
)

type DirectoryFacade struct {
	store ports.DirectoryStore
}

func NewDirectoryFacade(store ports.DirectoryStore) DirectoryFacade {
	return DirectoryFacade{store: store}
}

// Snapshot is the pair of payloads the explorer renders from.
type Snapshot struct {
	Bodies    []types.Body
	Officials []types.Official
}

func (f DirectoryFacade) ListBodies(ctx context.Context) ([]types.Body, error) {
	return f.store.ListBodies(ctx)
}

func (f DirectoryFacade) ListOfficials(ctx context.Context) ([]types.Official, error) {
	return f.store.ListOfficials(ctx)
}

func (f DirectoryFacade) ListLeaders(ctx context.Context) ([]types.LeadershipBranch, error) {
	rows, err := f.store.ListLeadershipRows(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateLeaders(rows), nil
}

func (f DirectoryFacade) Facets(ctx context.Context) (Facets, error) {
	officials, err := f.store.ListOfficials(ctx)
	if err != nil {
		return Facets{}, err
	}
	return ComputeFacets(officials), nil
}

// Load reads bodies and officials concurrently and waits for both.
func (f DirectoryFacade) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bodies, err := f.store.ListBodies(gctx)
		if err != nil {
			return err
		}
		snap.Bodies = bodies
		return nil
	})
	g.Go(func() error {
		officials, err := f.store.ListOfficials(gctx)
		if err != nil {
			return err
		}
		snap.Officials = officials
		return nil
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
