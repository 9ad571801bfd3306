// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/domain/party"
	"github.com/ocastro/autoglass-mis/internal/domain/purchasing"
	"github.com/ocastro/autoglass-mis/internal/domain/sales"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// UserResponse represents a user account in HTTP responses. The password
// hash is never serialized.
type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
}

// UserListResponse represents a list of user accounts.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Count int            `json:"count"`
}

// ToUserResponse converts a domain User entity to an HTTP response DTO.
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role.String(),
		Active:    u.Active,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// ToUserListResponse converts a slice of domain Users to a list response DTO.
func ToUserListResponse(users []identity.User) UserListResponse {
	items := make([]UserResponse, len(users))
	for i := range users {
		items[i] = ToUserResponse(&users[i])
	}
	return UserListResponse{Users: items, Count: len(items)}
}

// LoginResponse represents a successful authentication.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProductResponse represents a catalog product in HTTP responses.
type ProductResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	MinStockLevel int     `json:"min_stock_level"`
	LowStock      bool    `json:"low_stock"`
	SupplierID    *int64  `json:"supplier_id,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// ProductListResponse represents a list of products.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Count    int               `json:"count"`
}

// ToProductResponse converts a domain Product entity to an HTTP response DTO.
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category.String(),
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		MinStockLevel: p.MinStockLevel,
		LowStock:      p.LowStock(),
		SupplierID:    p.SupplierID,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}
}

// ToProductListResponse converts a slice of domain Products to a list
// response DTO.
func ToProductListResponse(products []catalog.Product) ProductListResponse {
	items := make([]ProductResponse, len(products))
	for i := range products {
		items[i] = ToProductResponse(&products[i])
	}
	return ProductListResponse{Products: items, Count: len(items)}
}

// CustomerResponse represents a customer in HTTP responses.
type CustomerResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"created_at"`
}

// CustomerListResponse represents a list of customers.
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Count     int                `json:"count"`
}

// ToCustomerResponse converts a domain Customer entity to an HTTP response DTO.
func ToCustomerResponse(c *party.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

// ToCustomerListResponse converts a slice of domain Customers to a list
// response DTO.
func ToCustomerListResponse(customers []party.Customer) CustomerListResponse {
	items := make([]CustomerResponse, len(customers))
	for i := range customers {
		items[i] = ToCustomerResponse(&customers[i])
	}
	return CustomerListResponse{Customers: items, Count: len(items)}
}

// SupplierResponse represents a supplier in HTTP responses.
type SupplierResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// SupplierListResponse represents a list of suppliers.
type SupplierListResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
	Count     int                `json:"count"`
}

// ToSupplierResponse converts a domain Supplier entity to an HTTP response DTO.
func ToSupplierResponse(s *party.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
}

// ToSupplierListResponse converts a slice of domain Suppliers to a list
// response DTO.
func ToSupplierListResponse(suppliers []party.Supplier) SupplierListResponse {
	items := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		items[i] = ToSupplierResponse(&suppliers[i])
	}
	return SupplierListResponse{Suppliers: items, Count: len(items)}
}

// SaleItemResponse represents one sale line in HTTP responses.
type SaleItemResponse struct {
	ProductID  int64   `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// SaleResponse represents a sale in HTTP responses.
type SaleResponse struct {
	ID            int64              `json:"id"`
	Reference     string             `json:"reference"`
	CustomerID    *int64             `json:"customer_id,omitempty"`
	UserID        int64              `json:"user_id"`
	TotalAmount   float64            `json:"total_amount"`
	PaymentMethod string             `json:"payment_method"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     string             `json:"created_at"`
}

// SaleListResponse represents a list of sales.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
	Count int            `json:"count"`
}

// ToSaleResponse converts a domain Sale entity to an HTTP response DTO.
func ToSaleResponse(s *sales.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		}
	}
	return SaleResponse{
		ID:            s.ID,
		Reference:     s.Reference,
		CustomerID:    s.CustomerID,
		UserID:        s.UserID,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod.String(),
		Items:         items,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
}

// ToSaleListResponse converts a slice of domain Sales to a list response DTO.
func ToSaleListResponse(salesList []sales.Sale) SaleListResponse {
	items := make([]SaleResponse, len(salesList))
	for i := range salesList {
		items[i] = ToSaleResponse(&salesList[i])
	}
	return SaleListResponse{Sales: items, Count: len(items)}
}

// OrderItemResponse represents one purchase order line in HTTP responses.
type OrderItemResponse struct {
	ProductID  int64   `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// PurchaseOrderResponse represents a purchase order in HTTP responses.
type PurchaseOrderResponse struct {
	ID               int64               `json:"id"`
	Number           string              `json:"number"`
	SupplierID       int64               `json:"supplier_id"`
	UserID           int64               `json:"user_id"`
	TotalAmount      float64             `json:"total_amount"`
	Status           string              `json:"status"`
	ExpectedDelivery string              `json:"expected_delivery,omitempty"`
	Notes            string              `json:"notes,omitempty"`
	Items            []OrderItemResponse `json:"items"`
	CreatedAt        string              `json:"created_at"`
}

// PurchaseOrderListResponse represents a list of purchase orders.
type PurchaseOrderListResponse struct {
	Orders []PurchaseOrderResponse `json:"orders"`
	Count  int                     `json:"count"`
}

// ToPurchaseOrderResponse converts a domain PurchaseOrder entity to an HTTP
// response DTO.
func ToPurchaseOrderResponse(o *purchasing.PurchaseOrder) PurchaseOrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		}
	}
	resp := PurchaseOrderResponse{
		ID:          o.ID,
		Number:      o.Number,
		SupplierID:  o.SupplierID,
		UserID:      o.UserID,
		TotalAmount: o.TotalAmount,
		Status:      o.Status.String(),
		Notes:       o.Notes,
		Items:       items,
		CreatedAt:   o.CreatedAt.Format(time.RFC3339),
	}
	if o.ExpectedDelivery != nil {
		resp.ExpectedDelivery = o.ExpectedDelivery.Format(dateLayout)
	}
	return resp
}

// ToPurchaseOrderListResponse converts a slice of domain PurchaseOrders to a
// list response DTO.
func ToPurchaseOrderListResponse(orders []purchasing.PurchaseOrder) PurchaseOrderListResponse {
	items := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		items[i] = ToPurchaseOrderResponse(&orders[i])
	}
	return PurchaseOrderListResponse{Orders: items, Count: len(items)}
}

// DashboardResponse represents the dashboard statistics.
type DashboardResponse struct {
	TotalProducts  int64          `json:"total_products"`
	LowStockItems  int64          `json:"low_stock_items"`
	TodaySales     int64          `json:"today_sales"`
	TotalCustomers int64          `json:"total_customers"`
	RecentSales    []SaleResponse `json:"recent_sales"`
}

// ToDashboardResponse converts dashboard stats to an HTTP response DTO.
func ToDashboardResponse(stats *ports.DashboardStats) DashboardResponse {
	recent := make([]SaleResponse, len(stats.RecentSales))
	for i := range stats.RecentSales {
		recent[i] = ToSaleResponse(&stats.RecentSales[i])
	}
	return DashboardResponse{
		TotalProducts:  stats.TotalProducts,
		LowStockItems:  stats.LowStockItems,
		TodaySales:     stats.TodaySales,
		TotalCustomers: stats.TotalCustomers,
		RecentSales:    recent,
	}
}

// DailyRevenueResponse is one day of the revenue series.
type DailyRevenueResponse struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// ProductSalesResponse is one entry of the top-products ranking.
type ProductSalesResponse struct {
	ProductID    int64   `json:"product_id"`
	Name         string  `json:"name"`
	QuantitySold int64   `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// SalesSummaryResponse represents the sales report aggregates.
type SalesSummaryResponse struct {
	DailyTotal   float64                `json:"daily_total"`
	WeeklyTotal  float64                `json:"weekly_total"`
	MonthlyTotal float64                `json:"monthly_total"`
	Daily        []DailyRevenueResponse `json:"daily"`
	TopProducts  []ProductSalesResponse `json:"top_products"`
}

// ToSalesSummaryResponse converts a sales summary to an HTTP response DTO.
func ToSalesSummaryResponse(s *ports.SalesSummary) SalesSummaryResponse {
	daily := make([]DailyRevenueResponse, len(s.Daily))
	for i, d := range s.Daily {
		daily[i] = DailyRevenueResponse{
			Date:  d.Date.Format(dateLayout),
			Total: d.Total,
		}
	}
	top := make([]ProductSalesResponse, len(s.TopProducts))
	for i, p := range s.TopProducts {
		top[i] = ProductSalesResponse{
			ProductID:    p.ProductID,
			Name:         p.Name,
			QuantitySold: p.QuantitySold,
			Revenue:      p.Revenue,
		}
	}
	return SalesSummaryResponse{
		DailyTotal:   s.DailyTotal,
		WeeklyTotal:  s.WeeklyTotal,
		MonthlyTotal: s.MonthlyTotal,
		Daily:        daily,
		TopProducts:  top,
	}
}

// CategorySummaryResponse is one category of the inventory report.
type CategorySummaryResponse struct {
	Category     string  `json:"category"`
	ProductCount int64   `json:"product_count"`
	StockValue   float64 `json:"stock_value"`
}

// InventorySummaryResponse represents the inventory valuation report.
type InventorySummaryResponse struct {
	Categories []CategorySummaryResponse `json:"categories"`
	TotalValue float64                   `json:"total_value"`
}

// ToInventorySummaryResponse converts an inventory summary to an HTTP
// response DTO.
func ToInventorySummaryResponse(s *ports.InventorySummary) InventorySummaryResponse {
	categories := make([]CategorySummaryResponse, len(s.Categories))
	for i, c := range s.Categories {
		categories[i] = CategorySummaryResponse{
			Category:     c.Category.String(),
			ProductCount: c.ProductCount,
			StockValue:   c.StockValue,
		}
	}
	return InventorySummaryResponse{
		Categories: categories,
		TotalValue: s.TotalValue,
	}
}
