package http

import (
	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/pkg/dormsdk"
)

func toUserResponse(u domain.User) dormsdk.UserResponse {
	return dormsdk.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Phone:      u.Phone,
		PictureURL: u.PictureURL,
		RoleID:     u.RoleID,
		CreatedAt:  u.CreatedAt,
	}
}

func toDormResponse(d domain.Dorm) dormsdk.DormResponse {
	return dormsdk.DormResponse{
		ID:              d.ID,
		OwnerID:         d.OwnerID,
		Name:            d.Name,
		Address:         d.Address,
		Description:     d.Description,
		PhotoURL:        d.PhotoURL,
		WaterRate:       d.WaterRate,
		ElectricityRate: d.ElectricityRate,
		CreatedAt:       d.CreatedAt,
	}
}

func toListingResponse(d domain.DormListing) dormsdk.ListingResponse {
	return dormsdk.ListingResponse{
		ID:             d.ID,
		Name:           d.Name,
		Address:        d.Address,
		Description:    d.Description,
		PhotoURL:       d.PhotoURL,
		AvailableRooms: d.AvailableRooms,
		TotalRooms:     d.TotalRooms,
		MinRent:        d.MinRent,
		MaxRent:        d.MaxRent,
	}
}

func toRoomResponse(r domain.Room) dormsdk.RoomResponse {
	return dormsdk.RoomResponse{
		ID:          r.ID,
		DormID:      r.DormID,
		Name:        r.Name,
		Floor:       r.Floor,
		MonthlyRent: r.MonthlyRent,
		Deposit:     r.Deposit,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}

func toReservationResponse(r domain.Reservation) dormsdk.ReservationResponse {
	return dormsdk.ReservationResponse{
		ID:        r.ID,
		RoomID:    r.RoomID,
		TenantID:  r.TenantID,
		Status:    string(r.Status),
		Note:      r.Note,
		CreatedAt: r.CreatedAt,
	}
}

func toContractResponse(c domain.Contract) dormsdk.ContractResponse {
	return dormsdk.ContractResponse{
		ID:          c.ID,
		RoomID:      c.RoomID,
		TenantID:    c.TenantID,
		StartDate:   c.StartDate,
		Months:      c.Months,
		MonthlyRent: c.MonthlyRent,
		Deposit:     c.Deposit,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
	}
}

func toBillResponse(b domain.Bill) dormsdk.BillResponse {
	return dormsdk.BillResponse{
		ID:                b.ID,
		ContractID:        b.ContractID,
		Month:             b.Month,
		RentAmount:        b.RentAmount,
		WaterUnits:        b.WaterUnits,
		WaterAmount:       b.WaterAmount,
		ElectricityUnits:  b.ElectricityUnits,
		ElectricityAmount: b.ElectricityAmount,
		Total:             b.Total,
		DueDate:           b.DueDate,
		Status:            string(b.Status),
		EvidenceURL:       b.EvidenceURL,
		CreatedAt:         b.CreatedAt,
	}
}

func toRepairResponse(r domain.Repair) dormsdk.RepairResponse {
	return dormsdk.RepairResponse{
		ID:          r.ID,
		RoomID:      r.RoomID,
		TenantID:    r.TenantID,
		Title:       r.Title,
		Description: r.Description,
		PhotoURL:    r.PhotoURL,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}
