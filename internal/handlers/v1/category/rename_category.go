package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/handlers/v1/session"
	"github.com/carson-networks/expensum/internal/service"
)

// RenameCategoryInput is the Huma input for renaming a category.
type RenameCategoryInput struct {
	ID   string `path:"id" format:"uuid" doc:"Category UUID"`
	Body NameBody
}

type categoryRenamer interface {
	RenameCategory(ctx context.Context, userID, id uuid.UUID, name string) (*service.Category, error)
}

// RenameCategoryHandler handles PATCH /v1/categories/{id}.
type RenameCategoryHandler struct {
	CategoryService categoryRenamer
	Verifier        session.Verifier
}

// NewRenameCategoryHandler creates a new RenameCategoryHandler.
func NewRenameCategoryHandler(svc categoryRenamer, verifier session.Verifier) *RenameCategoryHandler {
	return &RenameCategoryHandler{CategoryService: svc, Verifier: verifier}
}

// Register registers the rename category endpoint with the Huma API.
func (h *RenameCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "rename-category",
		Method:      http.MethodPatch,
		Path:        "/v1/categories/{id}",
		Summary:     "Rename category",
		Description: "Renames a category. The \"other\" category is read-only.",
		Tags:        []string{"Categories"},
		Middlewares: huma.Middlewares{session.Require(api, h.Verifier)},
	}, h.handle)
}

func (h *RenameCategoryHandler) handle(ctx context.Context, input *RenameCategoryInput) (*CategoryOutput, error) {
	userID, err := session.MustUserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "Invalid category id", err)
	}

	category, err := h.CategoryService.RenameCategory(ctx, userID, id, input.Body.Name)
	if err != nil {
		return nil, toHTTPError(err, "Failed to rename category")
	}
	return &CategoryOutput{Body: envelope.OK("Category updated", categoryToResponse(*category))}, nil
}
