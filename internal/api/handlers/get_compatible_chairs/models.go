package get_compatible_chairs

import (
	getCompatibleChairs "github.com/m04kA/SLN-BookingService/internal/usecase/get_compatible_chairs"
)

// ChairResponse HTTP model of a chair
type ChairResponse struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	SupportedServiceIDs []int64 `json:"supportedServiceIds"`
	StaffIDs            []int64 `json:"staffIds,omitempty"`
}

// CompatibleChairsResponse HTTP response model
type CompatibleChairsResponse struct {
	Chairs []*ChairResponse `json:"chairs"`
	Total  int              `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCompatibleChairs.Response) *CompatibleChairsResponse {
	chairs := make([]*ChairResponse, len(resp.Chairs))
	for i, chair := range resp.Chairs {
		chairs[i] = &ChairResponse{
			ID:                  chair.ID,
			Name:                chair.Name,
			SupportedServiceIDs: chair.SupportedServiceIDs,
			StaffIDs:            chair.StaffIDs,
		}
	}
	return &CompatibleChairsResponse{
		Chairs: chairs,
		Total:  len(chairs),
	}
}
