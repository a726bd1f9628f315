package response

import (
	"hustlehub/internal/data/entity"
)

type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	BusinessID  *string `json:"business_id,omitempty"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ServiceToResponse(service *entity.Service) ServiceResponse {
	resp := ServiceResponse{
		ID:          service.ID.String(),
		Name:        service.Name,
		Description: service.Description,
		Price:       service.Price,
	}

	if service.BusinessID != nil {
		businessID := service.BusinessID.String()
		resp.BusinessID = &businessID
	}

	return resp
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID.String(),
		Name: category.Name,
	}
}
