// Package bookingrepo implements BookingRepository on PostgreSQL via GORM.
// The aggregate maps to one row; line items are stored as a JSONB snapshot
// since they are immutable after pricing and never queried individually.
package bookingrepo

import (
	"encoding/json"
	"time"

	"haulaway/internal/core/domain/model/booking"
	"haulaway/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookingDTO is the database representation of a booking aggregate.
// driver_id and date share an index because dispatch reads are always scoped
// to one driver's day.
type BookingDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date     time.Time `gorm:"type:date;index:idx_bookings_driver_date,priority:2"`
	TimeSlot string
	Area     string
	Items    []byte `gorm:"type:jsonb"`

	CustomerName  string
	Phone         string
	Address       string
	AddressDetail string
	Memo          string

	ItemsTotal       int
	CrewSize         int
	CrewPrice        int
	NeedLadder       bool
	LadderType       string
	LadderHours      int
	LadderPrice      int
	TotalPrice       int
	EstimateMin      int
	EstimateMax      int
	TotalLoadingCube float64

	Status     string `gorm:"index"`
	FinalPrice *int

	DriverID   *uuid.UUID `gorm:"type:uuid;index:idx_bookings_driver_date,priority:1"`
	DriverName string
	RouteOrder *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's naming convention.
func (BookingDTO) TableName() string {
	return "bookings"
}

// lineItemJSON is the JSONB shape of one priced line item.
type lineItemJSON struct {
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	DisplayName string  `json:"displayName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   int     `json:"unitPrice"`
	UnitVolume  float64 `json:"unitVolume"`
	Verified    bool    `json:"verified"`
}

func marshalItems(items []booking.LineItem) ([]byte, error) {
	rows := make([]lineItemJSON, 0, len(items))
	for _, item := range items {
		rows = append(rows, lineItemJSON(item))
	}
	return json.Marshal(rows)
}

func unmarshalItems(raw []byte) ([]booking.LineItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var rows []lineItemJSON
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	items := make([]booking.LineItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, booking.LineItem(row))
	}
	return items, nil
}

func fromDomain(aggregate *booking.Booking) (BookingDTO, error) {
	items, err := marshalItems(aggregate.Items())
	if err != nil {
		return BookingDTO{}, err
	}

	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	customer := aggregate.Customer()
	pricing := aggregate.Pricing()

	return BookingDTO{
		ID:               aggregate.ID().Bytes(),
		Date:             aggregate.Date().Time(),
		TimeSlot:         aggregate.TimeSlot(),
		Area:             aggregate.Area(),
		Items:            items,
		CustomerName:     customer.Name,
		Phone:            customer.Phone,
		Address:          customer.Address,
		AddressDetail:    customer.AddressDetail,
		Memo:             customer.Memo,
		ItemsTotal:       pricing.ItemsTotal,
		CrewSize:         pricing.CrewSize,
		CrewPrice:        pricing.CrewPrice,
		NeedLadder:       pricing.NeedLadder,
		LadderType:       pricing.LadderType,
		LadderHours:      pricing.LadderHours,
		LadderPrice:      pricing.LadderPrice,
		TotalPrice:       pricing.TotalPrice,
		EstimateMin:      pricing.EstimateMin,
		EstimateMax:      pricing.EstimateMax,
		TotalLoadingCube: pricing.TotalLoadingCube,
		Status:           aggregate.Status().String(),
		FinalPrice:       aggregate.FinalPrice(),
		DriverID:         driverID,
		DriverName:       aggregate.DriverName(),
		RouteOrder:       aggregate.RouteOrder(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}, nil
}

func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := booking.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items, err := unmarshalItems(dto.Items)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	return booking.RestoreBooking(booking.RestoreBookingParams{
		ID:       id,
		Date:     kernel.NewServiceDate(dto.Date),
		TimeSlot: dto.TimeSlot,
		Area:     dto.Area,
		Items:    items,
		Customer: booking.CustomerInfo{
			Name:          dto.CustomerName,
			Phone:         dto.Phone,
			Address:       dto.Address,
			AddressDetail: dto.AddressDetail,
			Memo:          dto.Memo,
		},
		Pricing: booking.PriceSnapshot{
			ItemsTotal:       dto.ItemsTotal,
			CrewSize:         dto.CrewSize,
			CrewPrice:        dto.CrewPrice,
			NeedLadder:       dto.NeedLadder,
			LadderType:       dto.LadderType,
			LadderHours:      dto.LadderHours,
			LadderPrice:      dto.LadderPrice,
			TotalPrice:       dto.TotalPrice,
			EstimateMin:      dto.EstimateMin,
			EstimateMax:      dto.EstimateMax,
			TotalLoadingCube: dto.TotalLoadingCube,
		},
		Status:     status,
		FinalPrice: dto.FinalPrice,
		DriverID:   driverID,
		DriverName: dto.DriverName,
		RouteOrder: dto.RouteOrder,
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
	})
}
