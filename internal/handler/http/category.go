package http

import (
	"net/http"

	"github.com/netsg-cyber/Holidays-app/internal/domain/holiday"
	"github.com/netsg-cyber/Holidays-app/internal/handler/http/response"
)

type CategoryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type CategoryHandlerImpl struct{}

func NewCategoryHandler() CategoryHandler {
	return &CategoryHandlerImpl{}
}

// List implements CategoryHandler. The catalog is static.
func (h *CategoryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, holiday.Categories)
}
