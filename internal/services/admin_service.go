// internal/services/admin_service.go
package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/javajoker/retail-backend/internal/apperr"
	"github.com/javajoker/retail-backend/internal/i18n"
	"github.com/javajoker/retail-backend/internal/models"
	"github.com/javajoker/retail-backend/internal/utils"
)

const lowStockThreshold = 5

type AdminService struct {
	db *gorm.DB
}

type AdminDashboardStats struct {
	TotalUsers        int64                        `json:"totalUsers"`
	ActiveUsers       int64                        `json:"activeUsers"`
	NewUsersThisMonth int64                        `json:"newUsersThisMonth"`
	TotalProducts     int64                        `json:"totalProducts"`
	ActiveProducts    int64                        `json:"activeProducts"`
	LowStockProducts  int64                        `json:"lowStockProducts"`
	TotalOrders       int64                        `json:"totalOrders"`
	OrdersByStatus    map[models.OrderStatus]int64 `json:"ordersByStatus"`
	TotalRevenue      float64                      `json:"totalRevenue"`
	MonthlyRevenue    float64                      `json:"monthlyRevenue"`
}

type AdminUserFilter struct {
	utils.PaginationParams
	Role   *models.UserRole
	Status *models.UserStatus
	Search string
}

type UpdateUserStatusRequest struct {
	Status models.UserStatus `json:"status" validate:"required,oneof=active suspended"`
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// Dashboard Statistics
func (s *AdminService) GetDashboardStats(ctx context.Context) (*AdminDashboardStats, error) {
	db := s.db.WithContext(ctx)
	stats := &AdminDashboardStats{OrdersByStatus: make(map[models.OrderStatus]int64)}
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	counts := []struct {
		model interface{}
		dest  *int64
		where []interface{}
	}{
		{&models.User{}, &stats.TotalUsers, nil},
		{&models.User{}, &stats.ActiveUsers, []interface{}{"status = ?", models.UserStatusActive}},
		{&models.User{}, &stats.NewUsersThisMonth, []interface{}{"created_at >= ?", monthStart}},
		{&models.Product{}, &stats.TotalProducts, nil},
		{&models.Product{}, &stats.ActiveProducts, []interface{}{"status = ?", models.ProductStatusActive}},
		{&models.Product{}, &stats.LowStockProducts, []interface{}{"stock <= ?", lowStockThreshold}},
		{&models.Order{}, &stats.TotalOrders, nil},
	}
	for _, count := range counts {
		query := db.Model(count.model)
		if len(count.where) > 0 {
			query = query.Where(count.where[0], count.where[1:]...)
		}
		if err := query.Count(count.dest).Error; err != nil {
			return nil, apperr.Internal(i18n.KeyAdminStatsFailed, err)
		}
	}

	var byStatus []struct {
		Status models.OrderStatus
		Count  int64
	}
	if err := db.Model(&models.Order{}).Select("status, COUNT(*) AS count").Group("status").Scan(&byStatus).Error; err != nil {
		return nil, apperr.Internal(i18n.KeyAdminStatsFailed, err)
	}
	for _, row := range byStatus {
		stats.OrdersByStatus[row.Status] = row.Count
	}

	// Revenue statistics
	if err := db.Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, apperr.Internal(i18n.KeyAdminStatsFailed, err)
	}
	if err := db.Model(&models.Order{}).
		Where("status <> ? AND created_at >= ?", models.OrderStatusCancelled, monthStart).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&stats.MonthlyRevenue).Error; err != nil {
		return nil, apperr.Internal(i18n.KeyAdminStatsFailed, err)
	}

	return stats, nil
}

// User Management
func (s *AdminService) GetUsers(ctx context.Context, filter AdminUserFilter) ([]models.User, int64, error) {
	scoped := func() *gorm.DB {
		query := s.db.WithContext(ctx).Model(&models.User{})
		if filter.Role != nil {
			query = query.Where("role = ?", *filter.Role)
		}
		if filter.Status != nil {
			query = query.Where("status = ?", *filter.Status)
		}
		if search := strings.TrimSpace(filter.Search); search != "" {
			searchTerm := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", searchTerm, searchTerm)
		}
		return query
	}

	// Get total count
	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(i18n.KeyAdminUsersFailed, err)
	}

	// Apply sorting and pagination
	allowedSortFields := []string{"created_at", "updated_at", "name", "email", "role", "status"}
	query := utils.ApplySort(scoped(), filter.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, filter.PaginationParams)

	users := make([]models.User, 0)
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, apperr.Internal(i18n.KeyAdminUsersFailed, err)
	}

	return users, total, nil
}

// UpdateUserStatus suspends or reactivates a customer account. Admin
// accounts cannot be changed this way.
func (s *AdminService) UpdateUserStatus(ctx context.Context, userID uint, req *UpdateUserStatusRequest) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, apperr.FromDB(err, i18n.KeyAuthUserNotFound, i18n.KeyAdminUsersFailed)
	}

	if user.IsAdmin() {
		return nil, apperr.Forbidden(i18n.KeyAdminCannotModifyAdmin)
	}

	if err := s.db.WithContext(ctx).Model(&user).Update("status", req.Status).Error; err != nil {
		return nil, apperr.Internal(i18n.KeyAdminUsersFailed, err)
	}
	user.Status = req.Status

	return &user, nil
}
