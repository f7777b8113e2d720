package wad

import (
	"context"
	"runtime"

	"github.com/opencontainers/go-digest"
	"golang.org/x/sync/errgroup"
)

// Digests returns the sha256 digest of every lump in v, in directory order.
//
// Lumps are hashed concurrently, up to GOMAXPROCS at a time. The first
// invalid record or a cancelled ctx aborts the computation.
func (v View) Digests(ctx context.Context) ([]digest.Digest, error) {
	n := v.Len()
	out := make([]digest.Digest, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entry, err := v.entryAt(i)
			if err != nil {
				return err
			}
			out[i] = entry.Digest()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
