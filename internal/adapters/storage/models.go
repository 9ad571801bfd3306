package storage

import (
	"time"

	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/domain/party"
	"github.com/ocastro/autoglass-mis/internal/domain/purchasing"
	"github.com/ocastro/autoglass-mis/internal/domain/sales"
)

// GORM models mirror the domain entities one to one. Conversion goes through
// fromDomain/toDomain helpers so column tags never leak into the domain layer.

type userModel struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"size:80;not null;uniqueIndex"`
	Email        string `gorm:"size:120;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null"`
	Active       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

func userFromDomain(u *identity.User) *userModel {
	return &userModel{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
	}
}

func (m *userModel) toDomain() *identity.User {
	return &identity.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         identity.Role(m.Role),
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
	}
}

type productModel struct {
	ID            int64  `gorm:"primaryKey"`
	Name          string `gorm:"size:100;not null"`
	Category      string `gorm:"size:20;not null;index"`
	Description   string
	Price         float64 `gorm:"not null"`
	StockQuantity int     `gorm:"not null;default:0"`
	MinStockLevel int     `gorm:"not null;default:5"`
	SupplierID    *int64  `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (productModel) TableName() string { return "products" }

func productFromDomain(p *catalog.Product) *productModel {
	return &productModel{
		ID:            p.ID,
		Name:          p.Name,
		Category:      string(p.Category),
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		MinStockLevel: p.MinStockLevel,
		SupplierID:    p.SupplierID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (m *productModel) toDomain() *catalog.Product {
	return &catalog.Product{
		ID:            m.ID,
		Name:          m.Name,
		Category:      catalog.Category(m.Category),
		Description:   m.Description,
		Price:         m.Price,
		StockQuantity: m.StockQuantity,
		MinStockLevel: m.MinStockLevel,
		SupplierID:    m.SupplierID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type customerModel struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Phone     string `gorm:"size:30"`
	Email     string `gorm:"size:120"`
	Address   string
	CreatedAt time.Time
}

func (customerModel) TableName() string { return "customers" }

func customerFromDomain(c *party.Customer) *customerModel {
	return &customerModel{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func (m *customerModel) toDomain() *party.Customer {
	return &party.Customer{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     m.Email,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
	}
}

type supplierModel struct {
	ID            int64  `gorm:"primaryKey"`
	Name          string `gorm:"size:100;not null"`
	ContactPerson string `gorm:"size:100"`
	Phone         string `gorm:"size:30"`
	Email         string `gorm:"size:120"`
	Address       string
	CreatedAt     time.Time
}

func (supplierModel) TableName() string { return "suppliers" }

func supplierFromDomain(s *party.Supplier) *supplierModel {
	return &supplierModel{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		CreatedAt:     s.CreatedAt,
	}
}

func (m *supplierModel) toDomain() *party.Supplier {
	return &party.Supplier{
		ID:            m.ID,
		Name:          m.Name,
		ContactPerson: m.ContactPerson,
		Phone:         m.Phone,
		Email:         m.Email,
		Address:       m.Address,
		CreatedAt:     m.CreatedAt,
	}
}

type saleModel struct {
	ID            int64  `gorm:"primaryKey"`
	Reference     string `gorm:"size:40;not null;uniqueIndex"`
	CustomerID    *int64 `gorm:"index"`
	UserID        int64  `gorm:"not null;index"`
	TotalAmount   float64 `gorm:"not null"`
	PaymentMethod string  `gorm:"size:20;not null"`
	CreatedAt     time.Time `gorm:"index"`
	Items         []saleItemModel `gorm:"foreignKey:SaleID"`
}

func (saleModel) TableName() string { return "sales" }

type saleItemModel struct {
	ID         int64 `gorm:"primaryKey"`
	SaleID     int64 `gorm:"not null;index"`
	ProductID  int64 `gorm:"not null;index"`
	Quantity   int   `gorm:"not null"`
	UnitPrice  float64 `gorm:"not null"`
	TotalPrice float64 `gorm:"not null"`
}

func (saleItemModel) TableName() string { return "sale_items" }

func saleFromDomain(s *sales.Sale) *saleModel {
	m := &saleModel{
		ID:            s.ID,
		Reference:     s.Reference,
		CustomerID:    s.CustomerID,
		UserID:        s.UserID,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: string(s.PaymentMethod),
		CreatedAt:     s.CreatedAt,
	}
	for _, item := range s.Items {
		m.Items = append(m.Items, saleItemModel{
			ID:         item.ID,
			SaleID:     item.SaleID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}
	return m
}

func (m *saleModel) toDomain() *sales.Sale {
	s := &sales.Sale{
		ID:            m.ID,
		Reference:     m.Reference,
		CustomerID:    m.CustomerID,
		UserID:        m.UserID,
		TotalAmount:   m.TotalAmount,
		PaymentMethod: sales.PaymentMethod(m.PaymentMethod),
		CreatedAt:     m.CreatedAt,
	}
	for _, item := range m.Items {
		s.Items = append(s.Items, sales.SaleItem{
			ID:         item.ID,
			SaleID:     item.SaleID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}
	return s
}

type purchaseOrderModel struct {
	ID               int64  `gorm:"primaryKey"`
	Number           string `gorm:"size:20;not null;uniqueIndex"`
	SupplierID       int64  `gorm:"not null;index"`
	UserID           int64  `gorm:"not null"`
	TotalAmount      float64 `gorm:"not null"`
	Status           string  `gorm:"size:20;not null;index"`
	ExpectedDelivery *time.Time
	Notes            string
	CreatedAt        time.Time
	Items            []purchaseOrderItemModel `gorm:"foreignKey:OrderID"`
}

func (purchaseOrderModel) TableName() string { return "purchase_orders" }

type purchaseOrderItemModel struct {
	ID         int64 `gorm:"primaryKey"`
	OrderID    int64 `gorm:"not null;index"`
	ProductID  int64 `gorm:"not null;index"`
	Quantity   int   `gorm:"not null"`
	UnitPrice  float64 `gorm:"not null"`
	TotalPrice float64 `gorm:"not null"`
}

func (purchaseOrderItemModel) TableName() string { return "purchase_order_items" }

func orderFromDomain(o *purchasing.PurchaseOrder) *purchaseOrderModel {
	m := &purchaseOrderModel{
		ID:               o.ID,
		Number:           o.Number,
		SupplierID:       o.SupplierID,
		UserID:           o.UserID,
		TotalAmount:      o.TotalAmount,
		Status:           string(o.Status),
		ExpectedDelivery: o.ExpectedDelivery,
		Notes:            o.Notes,
		CreatedAt:        o.CreatedAt,
	}
	for _, item := range o.Items {
		m.Items = append(m.Items, purchaseOrderItemModel{
			ID:         item.ID,
			OrderID:    item.OrderID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}
	return m
}

func (m *purchaseOrderModel) toDomain() *purchasing.PurchaseOrder {
	o := &purchasing.PurchaseOrder{
		ID:               m.ID,
		Number:           m.Number,
		SupplierID:       m.SupplierID,
		UserID:           m.UserID,
		TotalAmount:      m.TotalAmount,
		Status:           purchasing.Status(m.Status),
		ExpectedDelivery: m.ExpectedDelivery,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
	}
	for _, item := range m.Items {
		o.Items = append(o.Items, purchasing.Item{
			ID:         item.ID,
			OrderID:    item.OrderID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}
	return o
}
