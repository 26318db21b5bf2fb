package services

import (
	"testing"

	"github.com/surajprakash3/Foodie-project/entity"

	"github.com/stretchr/testify/require"
)

func TestAddCreatesCartWithDefaultQuantity(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	food := seedFood(t, db, "Burger", 100, "Fast Food")

	cart, err := svc.Add(1, &AddToCartIn{FoodID: food.ID})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 1, cart.Items[0].Quantity)
	require.Equal(t, 100.0, cart.TotalAmount)
}

func TestAddWithoutQuantityIncrements(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	food := seedFood(t, db, "Burger", 100, "Fast Food")

	_, err := svc.Add(1, &AddToCartIn{FoodID: food.ID})
	require.NoError(t, err)
	cart, err := svc.Add(1, &AddToCartIn{FoodID: food.ID})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	require.Equal(t, 2, cart.Items[0].Quantity)
	require.Equal(t, 200.0, cart.TotalAmount)
}

func TestAddWithQuantityReplaces(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	food := seedFood(t, db, "Burger", 100, "Fast Food")

	_, err := svc.Add(1, &AddToCartIn{FoodID: food.ID, Quantity: intPtr(4)})
	require.NoError(t, err)
	cart, err := svc.Add(1, &AddToCartIn{FoodID: food.ID, Quantity: intPtr(2)})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	require.Equal(t, 2, cart.Items[0].Quantity)
	require.Equal(t, 200.0, cart.TotalAmount)
}

func TestAddZeroQuantityRemovesLine(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	food := seedFood(t, db, "Burger", 100, "Fast Food")

	_, err := svc.Add(1, &AddToCartIn{FoodID: food.ID, Quantity: intPtr(3)})
	require.NoError(t, err)
	cart, err := svc.Add(1, &AddToCartIn{FoodID: food.ID, Quantity: intPtr(0)})
	require.NoError(t, err)

	require.Empty(t, cart.Items)
	require.Equal(t, 0.0, cart.TotalAmount)
}

func TestAddNegativeQuantityNeverStored(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	food := seedFood(t, db, "Burger", 100, "Fast Food")

	// new line with non-positive quantity must not be inserted
	cart, err := svc.Add(1, &AddToCartIn{FoodID: food.ID, Quantity: intPtr(-2)})
	require.NoError(t, err)
	require.Empty(t, cart.Items)

	var count int64
	require.NoError(t, db.Model(&entity.CartItem{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestAddUnknownFood(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)

	_, err := svc.Add(1, &AddToCartIn{FoodID: 999})
	require.ErrorIs(t, err, ErrFoodNotFound)
}

func TestLineUniquenessPerFood(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	food := seedFood(t, db, "Burger", 100, "Fast Food")

	_, err := svc.Add(1, &AddToCartIn{FoodID: food.ID})
	require.NoError(t, err)
	cart, err := svc.Add(1, &AddToCartIn{FoodID: food.ID, Quantity: intPtr(5)})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
}

func TestTotalFollowsCurrentCatalogPrice(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	burger := seedFood(t, db, "Burger", 100, "Fast Food")
	fries := seedFood(t, db, "Fries", 50, "Sides")

	_, err := svc.Add(1, &AddToCartIn{FoodID: burger.ID, Quantity: intPtr(2)})
	require.NoError(t, err)

	// reprice the burger in the catalog; next mutation must pick it up
	require.NoError(t, db.Model(burger).Update("price", 150).Error)

	cart, err := svc.Add(1, &AddToCartIn{FoodID: fries.ID})
	require.NoError(t, err)
	require.Equal(t, 2*150.0+50.0, cart.TotalAmount)
}

func TestTotalSkipsDeletedFood(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	burger := seedFood(t, db, "Burger", 100, "Fast Food")
	fries := seedFood(t, db, "Fries", 50, "Sides")

	_, err := svc.Add(1, &AddToCartIn{FoodID: burger.ID})
	require.NoError(t, err)
	_, err = svc.Add(1, &AddToCartIn{FoodID: fries.ID})
	require.NoError(t, err)

	require.NoError(t, db.Delete(burger).Error)

	// the dangling line survives but contributes nothing to the total
	cart, err := svc.Add(1, &AddToCartIn{FoodID: fries.ID, Quantity: intPtr(2)})
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	require.Equal(t, 100.0, cart.TotalAmount)
}

func TestRemoveIsIdempotent(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	food := seedFood(t, db, "Burger", 100, "Fast Food")

	_, err := svc.Add(1, &AddToCartIn{FoodID: food.ID, Quantity: intPtr(2)})
	require.NoError(t, err)

	cart, err := svc.Remove(1, 424242)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 200.0, cart.TotalAmount)
}

func TestRemoveWithoutCart(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)

	_, err := svc.Remove(1, 1)
	require.ErrorIs(t, err, ErrCartNotFound)
}

func TestClearWithoutCartIsNoop(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)

	require.NoError(t, svc.Clear(1))
}

func TestClearEmptiesButKeepsCart(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)
	food := seedFood(t, db, "Burger", 100, "Fast Food")

	before, err := svc.Add(1, &AddToCartIn{FoodID: food.ID})
	require.NoError(t, err)
	require.NoError(t, svc.Clear(1))

	after, err := svc.Get(1)
	require.NoError(t, err)
	require.Equal(t, before.ID, after.ID) // same document, only emptied
	require.Empty(t, after.Items)
	require.Equal(t, 0.0, after.TotalAmount)
}

func TestGetWithoutCartReturnsEmptyCart(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)

	cart, err := svc.Get(7)
	require.NoError(t, err)
	require.Zero(t, cart.ID)
	require.Equal(t, uint(7), cart.UserID)
	require.Empty(t, cart.Items)
	require.Equal(t, 0.0, cart.TotalAmount)
}

func TestCartCheckoutScenario(t *testing.T) {
	db := setupDB(t)
	carts := newCartService(db)
	orders := newOrderService(db)
	itemA := seedFood(t, db, "A", 100, "Mains")
	itemB := seedFood(t, db, "B", 50, "Sides")

	cart, err := carts.Add(1, &AddToCartIn{FoodID: itemA.ID})
	require.NoError(t, err)
	require.Equal(t, 100.0, cart.TotalAmount)

	cart, err = carts.Add(1, &AddToCartIn{FoodID: itemA.ID})
	require.NoError(t, err)
	require.Equal(t, 2, cart.Items[0].Quantity)
	require.Equal(t, 200.0, cart.TotalAmount)

	cart, err = carts.Add(1, &AddToCartIn{FoodID: itemB.ID, Quantity: intPtr(3)})
	require.NoError(t, err)
	require.Equal(t, 350.0, cart.TotalAmount)

	cart, err = carts.Remove(1, itemA.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 150.0, cart.TotalAmount)

	order, err := orders.Place(1, &PlaceOrderIn{DeliveryAddress: "221B Baker St"})
	require.NoError(t, err)
	require.Equal(t, entity.StatusPending, order.Status)
	require.Equal(t, 150.0, order.TotalAmount)
	require.Len(t, order.Items, 1)
	require.Equal(t, "B", order.Items[0].Name)
	require.Equal(t, 50.0, order.Items[0].Price)
	require.Equal(t, 3, order.Items[0].Quantity)

	cart, err = carts.Get(1)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
	require.Equal(t, 0.0, cart.TotalAmount)
}
