package routes

import (
	"context"
	"fmt"
	"strconv"

	"cafestaff/controllers"
	"cafestaff/entity"
	"cafestaff/repository"
	"cafestaff/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminView is one screen registered in the panel.
type AdminView interface {
	Register(g *gin.RouterGroup)
	Nav() controllers.NavItem
}

// adminViews lists the screens in menu order with their permission flags.
func adminViews(db *gorm.DB, orders *services.OrderService, fulfillment *services.FulfillmentService, audit controllers.Auditor, pageSize int, log *zap.Logger) []AdminView {
	log = log.Named("admin")

	staff := &controllers.ModelView[entity.Staff]{
		Name:     "Staff",
		Endpoint: "staff",
		Columns: []controllers.Column{
			{Label: "ID", Field: "id", Sort: "id"},
			{Label: "Name", Field: "name", Sort: "name"},
			{Label: "Login", Field: "login", Sort: "login"},
			{Label: "Email", Field: "email", Sort: "email"},
		},
		SearchColumns: []string{"name", "login", "email"},
		DefaultSort:   "id",
		PageSize:      pageSize,
		Store:         repository.NewCrudRepository[entity.Staff](db, repository.ChildRef{Table: "manage", Column: "staff_id"}),
		Audit:         audit,
		Log:           log,
	}

	cafeOrders := &controllers.ModelView[entity.CafeOrder]{
		Name:        "Cafe Order",
		Endpoint:    "cafe_order",
		Permissions: controllers.Permissions{CanDelete: true},
		Columns: []controllers.Column{
			{Label: "ID", Field: "id", Sort: "id"},
			{Label: "User", Field: "user.firstName", Sort: "user_id"},
			{Label: "Food", Field: "food.name", Sort: "food_id"},
			{Label: "Drink", Field: "drink.name", Sort: "drink_id"},
			{Label: "Created", Field: "createdAt", Sort: "created_at"},
		},
		Preloads:    []string{"User", "Food", "Drink"},
		DefaultSort: "id",
		DefaultDesc: true,
		PageSize:    pageSize,
		Store:       orders,
		Audit:       audit,
		Log:         log,
	}

	manage := &controllers.ModelView[entity.Manage]{
		Name:        "Manage",
		Endpoint:    "manage",
		Permissions: controllers.Permissions{CanCreate: true, CanEdit: true},
		Columns: []controllers.Column{
			{Label: "ID", Field: "id", Sort: "id"},
			{Label: "Order", Field: "orderId", Sort: "order_id"},
			{Label: "Staff", Field: "staff.name", Sort: "staff_id"},
			{Label: "Done", Field: "isDone", Sort: "isdone"},
			{Label: "Updated", Field: "updatedAt", Sort: "updated_at"},
		},
		Preloads:    []string{"Staff", "Order"},
		DefaultSort: "id",
		DefaultDesc: true,
		PageSize:    pageSize,
		Fields: []controllers.FormField{
			{Name: "order_id", Label: "Order", Type: "select", Options: orderOptions(db)},
			{Name: "staff_id", Label: "Staff", Type: "select", Options: staffOptions(db)},
			{Name: "is_done", Label: "Is Done", Type: "checkbox"},
		},
		NewForm:  controllers.NewManageForm,
		FormFrom: controllers.ManageFormFrom,
		Store:    fulfillment,
		Audit:    audit,
		Log:      log,
	}

	users := &controllers.ModelView[entity.User]{
		Name:     "User",
		Endpoint: "user",
		Columns: []controllers.Column{
			{Label: "ID", Field: "id", Sort: "id"},
			{Label: "First Name", Field: "firstName", Sort: "first_name"},
			{Label: "Last Name", Field: "lastName", Sort: "last_name"},
			{Label: "Email", Field: "email", Sort: "email"},
		},
		SearchColumns: []string{"first_name", "last_name", "email"},
		DefaultSort:   "id",
		PageSize:      pageSize,
		Store:         repository.NewCrudRepository[entity.User](db, repository.ChildRef{Table: "cafe_order", Column: "user_id"}),
		Audit:         audit,
		Log:           log,
	}

	foods := &controllers.ModelView[entity.Food]{
		Name:        "Food",
		Endpoint:    "food",
		Permissions: controllers.Permissions{CanCreate: true, CanEdit: true, CanDelete: true},
		Columns: []controllers.Column{
			{Label: "ID", Field: "id", Sort: "id"},
			{Label: "Name", Field: "name", Sort: "name"},
			{Label: "Stock", Field: "stock", Sort: "stock"},
			{Label: "Price", Field: "price", Sort: "price"},
			{Label: "Image", Field: "image"},
			{Label: "Description", Field: "description"},
		},
		SearchColumns: []string{"name", "description"},
		DefaultSort:   "id",
		PageSize:      pageSize,
		Fields: []controllers.FormField{
			{Name: "name", Label: "Name", Type: "text"},
			{Name: "stock", Label: "Stock", Type: "number"},
			{Name: "price", Label: "Price", Type: "number"},
			{Name: "image", Label: "Image", Type: "text"},
			{Name: "description", Label: "Description", Type: "textarea"},
		},
		NewForm:     controllers.NewFoodForm,
		FormFrom:    controllers.FoodFormFrom,
		UniqueField: "name",
		Store:       repository.NewCrudRepository[entity.Food](db, repository.ChildRef{Table: "cafe_order", Column: "food_id"}),
		Audit:       audit,
		Log:         log,
	}

	drinks := &controllers.ModelView[entity.Drink]{
		Name:        "Drink",
		Endpoint:    "drink",
		Permissions: controllers.Permissions{CanCreate: true, CanEdit: true, CanDelete: true},
		Columns: []controllers.Column{
			{Label: "ID", Field: "id", Sort: "id"},
			{Label: "Name", Field: "name", Sort: "name"},
			{Label: "Size", Field: "size", Sort: "size"},
			{Label: "Price", Field: "price", Sort: "price"},
			{Label: "Image", Field: "image"},
			{Label: "Description", Field: "description"},
		},
		SearchColumns: []string{"name", "description"},
		DefaultSort:   "id",
		PageSize:      pageSize,
		Fields: []controllers.FormField{
			{Name: "name", Label: "Name", Type: "text"},
			{Name: "size", Label: "Size", Type: "text"},
			{Name: "price", Label: "Price", Type: "number"},
			{Name: "image", Label: "Image", Type: "text"},
			{Name: "description", Label: "Description", Type: "textarea"},
		},
		NewForm:     controllers.NewDrinkForm,
		FormFrom:    controllers.DrinkFormFrom,
		UniqueField: "name",
		Store:       repository.NewCrudRepository[entity.Drink](db, repository.ChildRef{Table: "cafe_order", Column: "drink_id"}),
		Audit:       audit,
		Log:         log,
	}

	auditLog := &controllers.ModelView[entity.AuditEntry]{
		Name:     "Audit Log",
		Endpoint: "audit",
		Columns: []controllers.Column{
			{Label: "ID", Field: "id", Sort: "id"},
			{Label: "When", Field: "createdAt", Sort: "created_at"},
			{Label: "Login", Field: "login", Sort: "login"},
			{Label: "Action", Field: "action", Sort: "action"},
			{Label: "Resource", Field: "resource", Sort: "resource"},
			{Label: "Record", Field: "recordId"},
			{Label: "Detail", Field: "detail"},
			{Label: "Address", Field: "remoteAddr"},
		},
		SearchColumns: []string{"login", "action", "resource"},
		DefaultSort:   "id",
		DefaultDesc:   true,
		PageSize:      pageSize,
		Store:         repository.NewCrudRepository[entity.AuditEntry](db),
		Log:           log,
	}

	return []AdminView{staff, cafeOrders, manage, users, foods, drinks, auditLog}
}

func orderOptions(db *gorm.DB) func(ctx context.Context) ([]controllers.Option, error) {
	return func(ctx context.Context) ([]controllers.Option, error) {
		var orders []entity.CafeOrder
		if err := db.WithContext(ctx).Preload("User").Order("id DESC").Limit(200).Find(&orders).Error; err != nil {
			return nil, err
		}
		opts := make([]controllers.Option, 0, len(orders))
		for _, o := range orders {
			label := fmt.Sprintf("#%d", o.ID)
			if o.User != nil {
				label += " " + o.User.String()
			}
			opts = append(opts, controllers.Option{Value: strconv.FormatUint(uint64(o.ID), 10), Label: label})
		}
		return opts, nil
	}
}

func staffOptions(db *gorm.DB) func(ctx context.Context) ([]controllers.Option, error) {
	return func(ctx context.Context) ([]controllers.Option, error) {
		var staff []entity.Staff
		if err := db.WithContext(ctx).Order("name").Find(&staff).Error; err != nil {
			return nil, err
		}
		opts := make([]controllers.Option, 0, len(staff))
		for _, s := range staff {
			opts = append(opts, controllers.Option{Value: strconv.FormatUint(uint64(s.ID), 10), Label: s.String()})
		}
		return opts, nil
	}
}
