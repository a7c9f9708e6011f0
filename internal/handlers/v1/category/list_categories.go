package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/handlers/v1/session"
	"github.com/carson-networks/expensum/internal/logging"
	"github.com/carson-networks/expensum/internal/service"
)

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body envelope.Response[[]Category]
}

type categoryLister interface {
	ListCategories(ctx context.Context, userID uuid.UUID) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
	Verifier        session.Verifier
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister, verifier session.Verifier) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc, Verifier: verifier}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Description: "Returns the signed-in user's categories ordered by name.",
		Tags:        []string{"Categories"},
		Middlewares: huma.Middlewares{session.Require(api, h.Verifier)},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	userID, err := session.MustUserID(ctx)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Timed(ctx, "listCategoriesMs")
	categories, err := h.CategoryService.ListCategories(ctx, userID)
	stopTimer()
	if err != nil {
		return nil, toHTTPError(err, "Failed to list categories")
	}
	logging.AddData(ctx, "categoryCount", len(categories))

	resp := make([]Category, len(categories))
	for i, c := range categories {
		resp[i] = categoryToResponse(c)
	}
	return &ListCategoriesOutput{Body: envelope.OK("Categories", resp)}, nil
}
