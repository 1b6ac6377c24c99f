package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"rb-admin-console/internal/collection"
	"rb-admin-console/internal/detail"
	"rb-admin-console/internal/domain"
	"rb-admin-console/internal/listquery"
	"rb-admin-console/internal/transport/middleware"
)

type ResourceAPI struct {
	workspace *collection.Workspace
}

type ResourceDescriptor struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	IDField     string   `json:"id_field"`
	Remote      bool     `json:"remote"`
	Writable    bool     `json:"writable"`
	Pagination  string   `json:"pagination"`
	PageSize    int      `json:"page_size"`
	DefaultSort string   `json:"default_sort"`
	Columns     []string `json:"columns"`
	Sortable    []string `json:"sortable"`
}

type ListResponse struct {
	Rows       []domain.Record `json:"rows"`
	Total      int             `json:"total"`
	TotalPages int             `json:"total_pages"`
	Page       int             `json:"page"`
	Error      string          `json:"error,omitempty"`
}

func NewResourceAPI(workspace *collection.Workspace) *ResourceAPI {
	return &ResourceAPI{workspace: workspace}
}

func (api *ResourceAPI) List(c echo.Context) error {
	resources := api.workspace.Registry().All()
	data := make([]ResourceDescriptor, 0, len(resources))
	for _, r := range resources {
		d := ResourceDescriptor{
			Name:        r.Name,
			Title:       r.Title,
			IDField:     r.IDField,
			Remote:      r.Remote(),
			Writable:    r.Writable,
			Pagination:  string(r.Pagination),
			PageSize:    r.PageSize,
			DefaultSort: r.DefaultSort,
		}
		for _, col := range r.Columns {
			d.Columns = append(d.Columns, col.Field)
			if _, ok := r.SortKeys[col.Field]; ok && col.Sortable {
				d.Sortable = append(d.Sortable, col.Field)
			}
		}
		data = append(data, d)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  data,
		"total": len(data),
	})
}

// Records возвращает страницу коллекции после поиска и сортировки
func (api *ResourceAPI) Records(c echo.Context) error {
	store, err := api.store(c)
	if err != nil {
		return err
	}
	res := store.Resource()
	q := listquery.QueryFromValues(c.QueryParams(), res.DefaultSort)
	result := store.Query(c.Request().Context(), middleware.TokenFrom(c), q)

	resp := ListResponse{
		Rows:       result.Rows,
		Total:      result.Total,
		TotalPages: result.TotalPages,
		Page:       result.Page,
	}
	if resp.Rows == nil {
		resp.Rows = []domain.Record{}
	}
	if lastErr := store.Snapshot().LastErr; lastErr != nil {
		resp.Error = lastErr.Error()
	}
	return c.JSON(http.StatusOK, resp)
}

// Get возвращает вид одной записи
func (api *ResourceAPI) Get(c echo.Context) error {
	store, err := api.store(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	rec := store.Fetch(c.Request().Context(), middleware.TokenFrom(c), id)
	if rec == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": detail.NotFoundMessage})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data": rec,
		"view": detail.Build(store.Resource(), rec),
	})
}

func (api *ResourceAPI) store(c echo.Context) (*collection.Store, error) {
	store, err := api.workspace.Store(middleware.TokenFrom(c), c.Param("resource"))
	if errors.Is(err, domain.ErrUnknownResource) {
		return nil, echo.NewHTTPError(http.StatusNotFound, "unknown resource")
	}
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return store, nil
}
