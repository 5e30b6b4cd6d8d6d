// Package api exposes the rendering pipeline over HTTP.
package api

import (
	"context"

	"github.com/Anilcodes01/bookforge"
)

// BookRenderer is the slice of the pipeline the handlers need. Satisfied by
// *bookforge.Service and by PoolRenderer; tests substitute stubs.
type BookRenderer interface {
	GeneratePreview(ctx context.Context, req bookforge.RenderRequest) (*bookforge.RenderedArtifact, error)
	RenderManuscript(ctx context.Context, m bookforge.ManuscriptFile) (*bookforge.RenderedArtifact, error)
}

// PoolRenderer adapts a ServicePool to BookRenderer, holding one pooled
// service for the duration of each call so one slow render cannot stall
// other requests beyond pool capacity.
type PoolRenderer struct {
	pool *bookforge.ServicePool
}

// NewPoolRenderer wraps pool.
func NewPoolRenderer(pool *bookforge.ServicePool) *PoolRenderer {
	return &PoolRenderer{pool: pool}
}

func (r *PoolRenderer) GeneratePreview(ctx context.Context, req bookforge.RenderRequest) (*bookforge.RenderedArtifact, error) {
	svc, err := r.pool.Acquire()
	if err != nil {
		return nil, err
	}
	defer r.pool.Release(svc)
	return svc.GeneratePreview(ctx, req)
}

func (r *PoolRenderer) RenderManuscript(ctx context.Context, m bookforge.ManuscriptFile) (*bookforge.RenderedArtifact, error) {
	svc, err := r.pool.Acquire()
	if err != nil {
		return nil, err
	}
	defer r.pool.Release(svc)
	return svc.RenderManuscript(ctx, m)
}

// Compile-time interface check.
var _ BookRenderer = (*PoolRenderer)(nil)
