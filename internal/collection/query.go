package collection

import (
	"context"

	"rb-admin-console/internal/domain"
	"rb-admin-console/internal/listquery"
)

// Query строит страницу списка.
// Ресурсы с серверной пагинацией перезапрашивают страницу у бэкенда на каждый запрос,
// остальные один раз загружают коллекцию целиком и режут ее локально.
func (s *Store) Query(ctx context.Context, token string, q listquery.Query) listquery.Result {
	if s.res.Pagination == domain.PaginateServer && s.Online() {
		_ = s.Refresh(ctx, token, q.ServerParams(s.res.PageSize))
		snap := s.Snapshot()
		return listquery.RenderServer(snap.Items, snap.Total, q, s.res.PageSize)
	}
	s.EnsureLoaded(ctx, token, nil)
	return listquery.Render(s.Snapshot().Items, q, listquery.SpecFor(s.res))
}

// Reload перезагружает коллекцию по кнопке Refresh
func (s *Store) Reload(ctx context.Context, token string, q listquery.Query) error {
	if s.res.Pagination == domain.PaginateServer {
		return s.Refresh(ctx, token, q.ServerParams(s.res.PageSize))
	}
	return s.Refresh(ctx, token, nil)
}
