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

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body NameBody
}

// CategoryOutput is the Huma output for the endpoints that return one category.
type CategoryOutput struct {
	Body envelope.Response[Category]
}

type categoryCreator interface {
	CreateCategory(ctx context.Context, userID uuid.UUID, name string) (*service.Category, error)
}

// CreateCategoryHandler handles PUT /v1/categories.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
	Verifier        session.Verifier
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(svc categoryCreator, verifier session.Verifier) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc, Verifier: verifier}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPut,
		Path:          "/v1/categories",
		Summary:       "Create category",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   huma.Middlewares{session.Require(api, h.Verifier)},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error) {
	userID, err := session.MustUserID(ctx)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Timed(ctx, "createCategoryMs")
	category, err := h.CategoryService.CreateCategory(ctx, userID, input.Body.Name)
	stopTimer()
	if err != nil {
		return nil, toHTTPError(err, "Failed to create category")
	}
	return &CategoryOutput{Body: envelope.Created("Category created", categoryToResponse(*category))}, nil
}
