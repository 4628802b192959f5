// internal/domain/order/service_test.go
package order

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/cart"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/catalog"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/user"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/errs"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory SQLite gives every pooled connection its own database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&user.User{},
		&catalog.Category{},
		&catalog.Brand{},
		&catalog.Product{},
		&catalog.ProductColor{},
		&catalog.ProductSize{},
		&catalog.ProductImage{},
		&cart.Cart{},
		&cart.CartItem{},
		&Order{},
		&OrderItem{},
	))
	return db
}

type fixture struct {
	db      *gorm.DB
	user    user.User
	product catalog.Product
	color   catalog.ProductColor
	size    catalog.ProductSize
	cart    cart.Cart
}

// seedFixture creates a user with a cart holding one line of the given
// quantity against a size row with the given stock.
func seedFixture(t *testing.T, db *gorm.DB, stock, quantity int) *fixture {
	t.Helper()

	f := &fixture{db: db}

	f.user = user.User{Name: "Asha", Email: "asha@example.com", Password: "x", IsActive: true}
	require.NoError(t, db.Create(&f.user).Error)

	f.product = catalog.Product{Name: "Air Runner", Price: 259900, Stock: stock, IsActive: true}
	require.NoError(t, db.Create(&f.product).Error)

	f.color = catalog.ProductColor{ProductID: f.product.ID, ColorName: "Black", IsActive: true}
	require.NoError(t, db.Create(&f.color).Error)

	f.size = catalog.ProductSize{ColorID: &f.color.ID, SizeName: "9", Stock: stock, IsAvailable: true}
	require.NoError(t, db.Create(&f.size).Error)

	f.cart = cart.Cart{UserID: f.user.ID}
	require.NoError(t, db.Create(&f.cart).Error)

	item := cart.CartItem{
		CartID:    f.cart.ID,
		ProductID: f.product.ID,
		ColorID:   &f.color.ID,
		SizeID:    &f.size.ID,
		Quantity:  quantity,
	}
	require.NoError(t, db.Create(&item).Error)

	return f
}

func placeRequest(f *fixture) *CreateOrderRequest {
	return &CreateOrderRequest{
		UserID:  f.user.ID,
		Address: "12 MG Road",
		City:    "Pune",
		Pincode: "411001",
		Phone:   "9876543210",
	}
}

type recordingNotifier struct {
	orderIDs []uint
}

func (n *recordingNotifier) EnqueueOrderConfirmation(_, _ string, orderID uint, _ int64) {
	n.orderIDs = append(n.orderIDs, orderID)
}

func TestPlaceOrderHappyPath(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 5, 2)
	notifier := &recordingNotifier{}
	svc := NewService(db, notifier)

	o, err := svc.PlaceOrder(placeRequest(f))
	require.NoError(t, err)

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, int64(2*259900), o.TotalAmount)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "Air Runner", o.Items[0].ProductName)
	assert.Equal(t, "9", o.Items[0].SizeName)
	assert.Equal(t, "Black", o.Items[0].ColorName)
	assert.Equal(t, int64(259900), o.Items[0].UnitPrice)
	assert.Equal(t, 2, o.Items[0].Quantity)

	// Stock 5 minus quantity 2 leaves 3
	var size catalog.ProductSize
	require.NoError(t, db.First(&size, f.size.ID).Error)
	assert.Equal(t, 3, size.Stock)
	assert.True(t, size.IsAvailable)

	var product catalog.Product
	require.NoError(t, db.First(&product, f.product.ID).Error)
	assert.Equal(t, 3, product.Stock)

	// Cart is emptied
	var remaining int64
	db.Model(&cart.CartItem{}).Where("cart_id = ?", f.cart.ID).Count(&remaining)
	assert.Zero(t, remaining)

	// Confirmation email enqueued
	assert.Equal(t, []uint{o.ID}, notifier.orderIDs)
}

func TestPlaceOrderInsufficientStockLeavesEverythingUnchanged(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 5, 10)
	svc := NewService(db, nil)

	_, err := svc.PlaceOrder(placeRequest(f))
	require.Error(t, err)
	assert.Equal(t, errs.KindInsufficientStock, errs.KindOf(err))
	assert.Contains(t, err.Error(), "Air Runner")
	assert.Contains(t, err.Error(), "Requested: 10")
	assert.Contains(t, err.Error(), "Available: 5")

	// Nothing was written
	var size catalog.ProductSize
	require.NoError(t, db.First(&size, f.size.ID).Error)
	assert.Equal(t, 5, size.Stock)

	var orders int64
	db.Model(&Order{}).Count(&orders)
	assert.Zero(t, orders)

	var items int64
	db.Model(&cart.CartItem{}).Where("cart_id = ?", f.cart.ID).Count(&items)
	assert.Equal(t, int64(1), items)
}

func TestPlaceOrderMultiLineFailureRollsBackEarlierLines(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 5, 2)

	// Second line exceeds its stock, so the whole checkout must fail
	// without touching the first line's stock.
	size2 := catalog.ProductSize{ColorID: &f.color.ID, SizeName: "10", Stock: 1, IsAvailable: true}
	require.NoError(t, db.Create(&size2).Error)
	require.NoError(t, db.Create(&cart.CartItem{
		CartID:    f.cart.ID,
		ProductID: f.product.ID,
		ColorID:   &f.color.ID,
		SizeID:    &size2.ID,
		Quantity:  3,
	}).Error)

	svc := NewService(db, nil)
	_, err := svc.PlaceOrder(placeRequest(f))
	require.Error(t, err)
	assert.Equal(t, errs.KindInsufficientStock, errs.KindOf(err))

	var first catalog.ProductSize
	require.NoError(t, db.First(&first, f.size.ID).Error)
	assert.Equal(t, 5, first.Stock)

	var second catalog.ProductSize
	require.NoError(t, db.First(&second, size2.ID).Error)
	assert.Equal(t, 1, second.Stock)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 5, 2)
	require.NoError(t, db.Where("cart_id = ?", f.cart.ID).Delete(&cart.CartItem{}).Error)

	svc := NewService(db, nil)
	_, err := svc.PlaceOrder(placeRequest(f))
	require.Error(t, err)
	assert.Equal(t, errs.KindEmptyCart, errs.KindOf(err))
}

func TestPlaceOrderSizeColorMismatch(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 5, 2)

	// Point the cart line at a size row belonging to a different color
	otherColor := catalog.ProductColor{ProductID: f.product.ID, ColorName: "White", IsActive: true}
	require.NoError(t, db.Create(&otherColor).Error)
	otherSize := catalog.ProductSize{ColorID: &otherColor.ID, SizeName: "9", Stock: 5, IsAvailable: true}
	require.NoError(t, db.Create(&otherSize).Error)

	require.NoError(t, db.Model(&cart.CartItem{}).
		Where("cart_id = ?", f.cart.ID).
		Update("size_id", otherSize.ID).Error)

	svc := NewService(db, nil)
	_, err := svc.PlaceOrder(placeRequest(f))
	require.Error(t, err)
	assert.Equal(t, errs.KindSizeNotFound, errs.KindOf(err))
}

func TestPlaceOrderColorlessLineMatchesOnlyColorlessSize(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 5, 2)

	// A line without a color must not consume a colored size row
	require.NoError(t, db.Model(&cart.CartItem{}).
		Where("cart_id = ?", f.cart.ID).
		Update("color_id", nil).Error)

	svc := NewService(db, nil)
	_, err := svc.PlaceOrder(placeRequest(f))
	require.Error(t, err)
	assert.Equal(t, errs.KindSizeNotFound, errs.KindOf(err))

	// With a colorless size row it goes through
	colorless := catalog.ProductSize{ColorID: nil, SizeName: "9", Stock: 4, IsAvailable: true}
	require.NoError(t, db.Create(&colorless).Error)
	require.NoError(t, db.Model(&cart.CartItem{}).
		Where("cart_id = ?", f.cart.ID).
		Update("size_id", colorless.ID).Error)

	o, err := svc.PlaceOrder(placeRequest(f))
	require.NoError(t, err)
	assert.Equal(t, int64(2*259900), o.TotalAmount)

	var size catalog.ProductSize
	require.NoError(t, db.First(&size, colorless.ID).Error)
	assert.Equal(t, 2, size.Stock)
}

func TestPlaceOrderExactStockMarksSizeUnavailable(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 2, 2)
	svc := NewService(db, nil)

	_, err := svc.PlaceOrder(placeRequest(f))
	require.NoError(t, err)

	var size catalog.ProductSize
	require.NoError(t, db.First(&size, f.size.ID).Error)
	assert.Equal(t, 0, size.Stock)
	assert.False(t, size.IsAvailable)
}

func TestPlaceOrderProductStockFloorsAtZero(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 5, 2)

	// Aggregate product stock lags behind the size stock
	require.NoError(t, db.Model(&catalog.Product{}).
		Where("id = ?", f.product.ID).
		Update("stock", 1).Error)

	svc := NewService(db, nil)
	_, err := svc.PlaceOrder(placeRequest(f))
	require.NoError(t, err)

	var product catalog.Product
	require.NoError(t, db.First(&product, f.product.ID).Error)
	assert.Equal(t, 0, product.Stock)
}

func TestPlaceOrderUsesColorPriceOverride(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 5, 2)

	require.NoError(t, db.Model(&catalog.ProductColor{}).
		Where("id = ?", f.color.ID).
		Update("price", 299900).Error)

	svc := NewService(db, nil)
	o, err := svc.PlaceOrder(placeRequest(f))
	require.NoError(t, err)
	assert.Equal(t, int64(2*299900), o.TotalAmount)
	assert.Equal(t, int64(299900), o.Items[0].UnitPrice)
}

func TestPlaceOrderTotalMatchesItemSum(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 10, 3)

	size2 := catalog.ProductSize{ColorID: &f.color.ID, SizeName: "11", Stock: 10, IsAvailable: true}
	require.NoError(t, db.Create(&size2).Error)
	require.NoError(t, db.Create(&cart.CartItem{
		CartID:    f.cart.ID,
		ProductID: f.product.ID,
		ColorID:   &f.color.ID,
		SizeID:    &size2.ID,
		Quantity:  1,
	}).Error)

	svc := NewService(db, nil)
	o, err := svc.PlaceOrder(placeRequest(f))
	require.NoError(t, err)

	var sum int64
	for _, item := range o.Items {
		sum += item.Subtotal()
	}
	assert.Equal(t, sum, o.TotalAmount)
}

func TestCancelOrderRestoresStock(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 5, 2)
	svc := NewService(db, nil)

	o, err := svc.PlaceOrder(placeRequest(f))
	require.NoError(t, err)

	cancelled, err := svc.CancelOrder(o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)

	var size catalog.ProductSize
	require.NoError(t, db.First(&size, f.size.ID).Error)
	assert.Equal(t, 5, size.Stock)
	assert.True(t, size.IsAvailable)
}

func TestCancelOrderRejectsTerminalStatus(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 5, 2)
	svc := NewService(db, nil)

	o, err := svc.PlaceOrder(placeRequest(f))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(&UpdateStatusRequest{OrderID: o.ID, Status: StatusPaid})
	require.NoError(t, err)

	_, err = svc.CancelOrder(o.ID)
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 5, 2)
	svc := NewService(db, nil)

	o, err := svc.PlaceOrder(placeRequest(f))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(&UpdateStatusRequest{OrderID: o.ID, Status: StatusPaid})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(&UpdateStatusRequest{OrderID: o.ID, Status: StatusProcessing})
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))

	_, err = svc.UpdateStatus(&UpdateStatusRequest{OrderID: o.ID, Status: "Shipped"})
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestGetOrdersByStatus(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 5, 2)
	svc := NewService(db, nil)

	o, err := svc.PlaceOrder(placeRequest(f))
	require.NoError(t, err)

	pending, err := svc.GetOrdersByStatus(StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, o.ID, pending[0].ID)

	paid, err := svc.GetOrdersByStatus(StatusPaid)
	require.NoError(t, err)
	assert.Empty(t, paid)

	_, err = svc.GetOrdersByStatus("Unknown")
	require.Error(t, err)
}

func TestGetStatistics(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db, 10, 2)
	svc := NewService(db, nil)

	o, err := svc.PlaceOrder(placeRequest(f))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(&UpdateStatusRequest{OrderID: o.ID, Status: StatusPaid})
	require.NoError(t, err)

	stats, err := svc.GetStatistics()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.PaidOrders)
	assert.Equal(t, int64(0), stats.PendingOrders)
	assert.Equal(t, o.TotalAmount, stats.TotalRevenue)
}
