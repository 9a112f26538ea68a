// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and their relational
// representation.
package orderrepo

import (
	"sort"
	"time"

	"menucore/internal/core/domain/model/kernel"
	"menucore/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates, indexed for lookups by number and for the startup restore
// ordered by creation time.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number      int64           `gorm:"uniqueIndex"`
	TableID     string          `gorm:"index"`
	BranchID    string          `gorm:"index"`
	Status      int             `gorm:"index"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Items       []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted line item. Position preserves the
// submission order of the lines within their order.
type OrderItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID       `gorm:"type:uuid"`
	Quantity   int
	Notes      string
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status     int
	Position   int
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, len(items))
	for i, item := range items {
		itemDTOs[i] = OrderItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
			Notes:      item.Notes(),
			UnitPrice:  item.UnitPrice().Amount(),
			Status:     int(item.Status()),
			Position:   i,
		}
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		Number:      aggregate.Number(),
		TableID:     aggregate.TableID(),
		BranchID:    aggregate.BranchID(),
		Status:      int(aggregate.Status()),
		TotalAmount: aggregate.TotalAmount().Amount(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		Items:       itemDTOs,
	}
}

// toDomain converts a database DTO back into an order aggregate, restoring
// line items in their original submission order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Items, func(i, j int) bool {
		return dto.Items[i].Position < dto.Items[j].Position
	})

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		dto.TableID,
		dto.BranchID,
		items,
		order.Status(dto.Status),
		totalAmount,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, menuItemID, dto.Quantity, dto.Notes, unitPrice, order.ItemStatus(dto.Status))
}
