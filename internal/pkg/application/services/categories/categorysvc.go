package categories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/diwise/store-publisher/internal/pkg/application/services/store"
	"github.com/diwise/store-publisher/internal/pkg/domain"
	"github.com/diwise/store-publisher/internal/pkg/infrastructure/auth"
	"golang.org/x/exp/slices"
)

// CategoryIndex maps a category id to its compact representation. It is
// built once per request and read only after that.
type CategoryIndex map[string]domain.CategoryRef

// ErrUnknownCategory is returned when ancestor expansion encounters an id
// that was never indexed. Callers must treat it as fatal input validation
// failure.
var ErrUnknownCategory = errors.New("unknown category id")

// CategoryService fetches the launched category forest and the current
// user's catalogs from the store.
//
//go:generate moq -rm -out categorysvc_mock.go . CategoryService
type CategoryService interface {
	Categories(ctx context.Context) ([]domain.Category, CategoryIndex, error)
	Catalogs(ctx context.Context) ([]domain.Catalog, error)
}

func NewCategoryService(client *store.Client, tokens auth.TokenSource) CategoryService {
	return &catSvc{client: client, tokens: tokens}
}

type catSvc struct {
	client *store.Client
	tokens auth.TokenSource
}

func (svc *catSvc) Categories(ctx context.Context) ([]domain.Category, CategoryIndex, error) {
	url := svc.client.StoreURL() + "/DSProductCatalog/api/catalogManagement/v2/category?lifecycleStatus=Launched"

	resp, err := svc.client.Request(ctx, http.MethodGet, url, nil, nil)
	if err != nil {
		return nil, nil, err
	}

	categories := []domain.Category{}
	if err := json.Unmarshal(resp.Body, &categories); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal categories: %s", err.Error())
	}

	ordered, index := Sort(categories)
	return ordered, index, nil
}

func (svc *catSvc) Catalogs(ctx context.Context) ([]domain.Catalog, error) {
	url := fmt.Sprintf("%s/DSProductCatalog/api/catalogManagement/v2/catalog?lifecycleStatus=Launched&relatedParty.id=%s", svc.client.StoreURL(), svc.tokens.User())

	resp, err := svc.client.Request(ctx, http.MethodGet, url, nil, nil)
	if err != nil {
		return nil, err
	}

	catalogs := []domain.Catalog{}
	if err := json.Unmarshal(resp.Body, &catalogs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalogs: %s", err.Error())
	}

	return catalogs, nil
}

// Sort arranges the flat category list so that every child is placed
// right after its parent, and builds the id index in lockstep. Input is
// ordered by ascending numeric id before placement, and a non root
// category whose parent has not been placed yet is dropped from the
// result. That quirk is kept on purpose for parity with how the store
// front end renders the tree.
func Sort(categories []domain.Category) ([]domain.Category, CategoryIndex) {
	index := CategoryIndex{}
	ordered := []domain.Category{}

	if len(categories) == 0 {
		return ordered, index
	}

	sorted := make([]domain.Category, len(categories))
	copy(sorted, categories)

	slices.SortFunc(sorted, func(a, b domain.Category) bool {
		ai, _ := strconv.Atoi(a.ID)
		bi, _ := strconv.Atoi(b.ID)
		return ai < bi
	})

	ordered = append(ordered, sorted[0])
	index[sorted[0].ID] = domain.CategoryRef{ID: sorted[0].ID, Href: sorted[0].Href}

	for _, cat := range sorted[1:] {
		if cat.IsRoot {
			ordered = append(ordered, cat)
			index[cat.ID] = domain.CategoryRef{ID: cat.ID, Href: cat.Href}
			continue
		}

		for i, placed := range ordered {
			if placed.ID == cat.ParentID {
				tail := append([]domain.Category{cat}, ordered[i+1:]...)
				ordered = append(ordered[:i+1], tail...)
				index[cat.ID] = domain.CategoryRef{ID: cat.ID, Href: cat.Href, ParentID: cat.ParentID}
				break
			}
		}
	}

	return ordered, index
}

// ExpandAncestors resolves the selected category ids to the full set of
// categories to attach to an offering, walking parent links all the way
// up to the roots. Every emitted ref has its parent id stripped.
func ExpandAncestors(index CategoryIndex, selected []string) ([]domain.CategoryRef, error) {
	expanded := []domain.CategoryRef{}
	seen := map[string]bool{}

	collect := func(ref domain.CategoryRef) {
		if !seen[ref.ID] {
			seen[ref.ID] = true
			expanded = append(expanded, domain.CategoryRef{ID: ref.ID, Href: ref.Href})
		}
	}

	for _, id := range selected {
		ref, ok := index[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, id)
		}

		collect(ref)

		for ref.ParentID != "" {
			parent, ok := index[ref.ParentID]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, ref.ParentID)
			}

			collect(parent)
			ref = parent
		}
	}

	return expanded, nil
}
