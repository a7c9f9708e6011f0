package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expensum/internal/handlers/v1/envelope"
	"github.com/carson-networks/expensum/internal/handlers/v1/session"
	"github.com/carson-networks/expensum/internal/logging"
)

// DeleteCategoryInput is the Huma input for deleting a category.
type DeleteCategoryInput struct {
	ID string `path:"id" format:"uuid" doc:"Category UUID"`
}

// DeleteCategoryBody reports how many expenses moved to "other".
type DeleteCategoryBody struct {
	Reassigned int64 `json:"reassigned" doc:"Expenses moved to the other category"`
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct {
	Body envelope.Response[DeleteCategoryBody]
}

type categoryDeleter interface {
	DeleteCategory(ctx context.Context, userID, id uuid.UUID) (int64, error)
}

// DeleteCategoryHandler handles DELETE /v1/categories/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
	Verifier        session.Verifier
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(svc categoryDeleter, verifier session.Verifier) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc, Verifier: verifier}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/v1/categories/{id}",
		Summary:     "Delete category",
		Description: "Deletes a category and moves its expenses to the other category.",
		Tags:        []string{"Categories"},
		Middlewares: huma.Middlewares{session.Require(api, h.Verifier)},
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	userID, err := session.MustUserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "Invalid category id", err)
	}

	stopTimer := logging.Timed(ctx, "deleteCategoryMs")
	reassigned, err := h.CategoryService.DeleteCategory(ctx, userID, id)
	stopTimer()
	if err != nil {
		return nil, toHTTPError(err, "Failed to delete category")
	}
	logging.AddData(ctx, "reassignedExpenses", reassigned)

	return &DeleteCategoryOutput{
		Body: envelope.OK("Category deleted", DeleteCategoryBody{Reassigned: reassigned}),
	}, nil
}
