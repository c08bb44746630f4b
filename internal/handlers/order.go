package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"quickcart_back_end/internal/database"
	"quickcart_back_end/internal/models"
	"quickcart_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PlaceOrder turns the user's cart into an order: snapshots prices,
// decrements stock, records the shipping address, clears the cart and
// notifies each seller involved.
func PlaceOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		Address models.Address `json:"address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var cart models.Cart
	err := database.Collection(database.ColCarts).
		FindOne(ctx, bson.M{"user": userID}).
		Decode(&cart)
	if err != nil || len(cart.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	// Decrement stock line by line with a conditional update so two
	// concurrent orders can never both take the last unit. On any failure
	// the decrements already made are put back.
	var items []models.OrderItem
	var decremented []models.OrderItem
	sellers := map[primitive.ObjectID][]string{}

	for _, line := range cart.Items {
		var product models.Product
		err := database.Collection(database.ColProducts).
			FindOne(ctx, bson.M{"_id": line.Product, "deleted": false}).
			Decode(&product)
		if err != nil {
			restoreStock(ctx, decremented)
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		result, err := database.Collection(database.ColProducts).
			UpdateOne(ctx,
				bson.M{"_id": line.Product, "stock": bson.M{"$gte": line.Quantity}},
				bson.M{"$inc": bson.M{"stock": -line.Quantity}})
		if err != nil || result.MatchedCount == 0 {
			restoreStock(ctx, decremented)
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Insufficient stock for %s", product.Name)})
			return
		}

		item := models.OrderItem{Product: line.Product, Quantity: line.Quantity, Price: product.Price}
		items = append(items, item)
		decremented = append(decremented, item)
		sellers[product.Seller] = append(sellers[product.Seller], product.Name)
	}

	order := models.Order{
		ID:            primitive.NewObjectID(),
		User:          userID,
		Items:         items,
		Total:         models.OrderTotal(items),
		Status:        models.OrderPending,
		PaymentMethod: "Cash on Delivery",
		Address:       input.Address,
		CreatedAt:     time.Now(),
	}

	if _, err := database.Collection(database.ColOrders).InsertOne(ctx, order); err != nil {
		restoreStock(ctx, decremented)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	saveOrderAddress(ctx, userID, input.Address)

	if _, err := database.Collection(database.ColCarts).DeleteOne(ctx, bson.M{"user": userID}); err != nil {
		log.Println("⚠️ Failed to clear cart after order:", err)
	}

	var customer models.User
	if err := database.Collection(database.ColUsers).
		FindOne(ctx, bson.M{"_id": userID}).
		Decode(&customer); err != nil {
		log.Println("⚠️ Could not load customer for seller notifications:", err)
	}

	notifySellers(ctx, customer, sellers)

	log.Println("🧾 Order placed:", order.ID.Hex())
	c.JSON(http.StatusCreated, order)
}

// restoreStock compensates partial decrements when order placement fails.
func restoreStock(ctx context.Context, items []models.OrderItem) {
	for _, item := range items {
		_, err := database.Collection(database.ColProducts).
			UpdateOne(ctx, bson.M{"_id": item.Product},
				bson.M{"$inc": bson.M{"stock": item.Quantity}})
		if err != nil {
			log.Println("❌ Stock restore failed for", item.Product.Hex(), err)
		}
	}
}

// saveOrderAddress appends the shipping address to the user's address book
// unless a structurally identical entry is already there.
func saveOrderAddress(ctx context.Context, userID primitive.ObjectID, address models.Address) {
	var user models.User
	err := database.Collection(database.ColUsers).
		FindOne(ctx, bson.M{"_id": userID}).
		Decode(&user)
	if err != nil {
		return
	}
	for _, existing := range user.Addresses {
		if existing.Equal(address) {
			return
		}
	}
	_, err = database.Collection(database.ColUsers).
		UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$push": bson.M{"addresses": address}})
	if err != nil {
		log.Println("⚠️ Failed to save order address:", err)
	}
}

// notifySellers writes one notification per distinct seller and emails them
// their product list. Emails are best-effort.
func notifySellers(ctx context.Context, customer models.User, sellers map[primitive.ObjectID][]string) {
	for sellerID, productNames := range sellers {
		message := fmt.Sprintf("New order from %s for %d product(s)", customer.Name, len(productNames))
		utils.CreateNotification(ctx, sellerID, "New Order Received", message, models.NotificationOrder)

		var seller models.User
		err := database.Collection(database.ColUsers).
			FindOne(ctx, bson.M{"_id": sellerID}).
			Decode(&seller)
		if err != nil {
			continue
		}
		productList := ""
		for _, name := range productNames {
			productList += "- " + name + "\n"
		}
		if err := utils.SendSellerOrderEmail(seller.Email, customer.Name, customer.Email, productList); err != nil {
			log.Println("⚠️ Seller order email failed:", err)
		}
	}
}

// GetMyOrders lists the caller's orders, newest first, with product names
// attached to each line.
func GetMyOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Collection(database.ColOrders).
		Find(ctx, bson.M{"user": userID}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode orders"})
		return
	}

	for i := range orders {
		attachProductNames(ctx, orders[i].Items)
	}

	c.JSON(http.StatusOK, orders)
}

// GetSellerOrders lists orders containing at least one of the seller's
// products, with the customer resolved.
func GetSellerOrders(c *gin.Context) {
	sellerID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	_, productIDs, err := sellerProductIndex(ctx, sellerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	cursor, err := database.Collection(database.ColOrders).
		Find(ctx, bson.M{"items.product": bson.M{"$in": productIDs}},
			options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode orders"})
		return
	}

	for i := range orders {
		attachProductNames(ctx, orders[i].Items)
		attachOrderUser(ctx, &orders[i])
	}

	c.JSON(http.StatusOK, orders)
}

// GetAllOrders is the admin view of every order.
func GetAllOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	cursor, err := database.Collection(database.ColOrders).
		Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode orders"})
		return
	}

	for i := range orders {
		attachProductNames(ctx, orders[i].Items)
		attachOrderUser(ctx, &orders[i])
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatusSeller lets a seller move an order to a new status,
// provided the order carries at least one of their products.
func UpdateOrderStatusSeller(c *gin.Context) {
	sellerID, ok := currentUserID(c)
	if !ok {
		return
	}
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var input struct {
		Status         string `json:"status" binding:"required"`
		RejectionNotes string `json:"rejectionNotes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var order models.Order
	err = database.Collection(database.ColOrders).
		FindOne(ctx, bson.M{"_id": orderID}).
		Decode(&order)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	if c.GetString("role") != models.RoleAdmin {
		productSellers, _, err := sellerProductIndex(ctx, sellerID)
		if err != nil || !order.ContainsSellerProduct(sellerID, productSellers) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized to update this order"})
			return
		}
	}

	applyOrderStatus(c, ctx, order, input.Status, input.RejectionNotes)
}

// UpdateOrderStatusAdmin is the unrestricted admin transition path.
func UpdateOrderStatusAdmin(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var input struct {
		Status         string `json:"status" binding:"required"`
		RejectionNotes string `json:"rejectionNotes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var order models.Order
	err = database.Collection(database.ColOrders).
		FindOne(ctx, bson.M{"_id": orderID}).
		Decode(&order)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	applyOrderStatus(c, ctx, order, input.Status, input.RejectionNotes)
}

// applyOrderStatus persists the transition and, when the status actually
// changed, notifies the customer in-app and by email.
func applyOrderStatus(c *gin.Context, ctx context.Context, order models.Order, newStatus, rejectionNotes string) {
	if !models.ValidOrderStatus(newStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	oldStatus := order.Status
	update := bson.M{"status": newStatus}
	if newStatus == models.OrderRejected && rejectionNotes != "" {
		update["rejectionNotes"] = rejectionNotes
		order.RejectionNotes = rejectionNotes
	}

	err := database.Collection(database.ColOrders).
		FindOneAndUpdate(ctx, bson.M{"_id": order.ID},
			bson.M{"$set": update}, findOneAndUpdateReturnAfter()).
		Decode(&order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	if oldStatus != newStatus {
		message := utils.OrderStatusMessage(newStatus, oldStatus, order.RejectionNotes)
		utils.CreateNotification(ctx, order.User, "Order Status Update", message, models.NotificationOrder)

		var customer models.User
		if err := database.Collection(database.ColUsers).
			FindOne(ctx, bson.M{"_id": order.User}).
			Decode(&customer); err == nil {
			if err := utils.SendOrderStatusEmail(customer.Email, message); err != nil {
				log.Println("⚠️ Order status email failed:", err)
			}
			order.UserName = customer.Name
			order.UserEmail = customer.Email
		}
	}

	attachProductNames(ctx, order.Items)

	log.Printf("📦 Order %s: %s → %s\n", order.ID.Hex(), oldStatus, newStatus)
	c.JSON(http.StatusOK, order)
}

// sellerProductIndex maps each of the seller's product ids back to the seller
// and returns the id list for order filtering.
func sellerProductIndex(ctx context.Context, sellerID primitive.ObjectID) (map[primitive.ObjectID]primitive.ObjectID, []primitive.ObjectID, error) {
	cursor, err := database.Collection(database.ColProducts).
		Find(ctx, bson.M{"seller": sellerID})
	if err != nil {
		return nil, nil, err
	}
	defer cursor.Close(ctx)

	productSellers := map[primitive.ObjectID]primitive.ObjectID{}
	var ids []primitive.ObjectID
	for cursor.Next(ctx) {
		var product models.Product
		if err := cursor.Decode(&product); err != nil {
			continue
		}
		productSellers[product.ID] = product.Seller
		ids = append(ids, product.ID)
	}
	return productSellers, ids, nil
}

// attachProductNames resolves product names onto order lines.
func attachProductNames(ctx context.Context, items []models.OrderItem) {
	for i := range items {
		var product models.Product
		err := database.Collection(database.ColProducts).
			FindOne(ctx, bson.M{"_id": items[i].Product}).
			Decode(&product)
		if err == nil {
			items[i].ProductName = product.Name
		}
	}
}

// attachOrderUser resolves the customer's name and email onto the order.
func attachOrderUser(ctx context.Context, order *models.Order) {
	var user models.User
	err := database.Collection(database.ColUsers).
		FindOne(ctx, bson.M{"_id": order.User}).
		Decode(&user)
	if err == nil {
		order.UserName = user.Name
		order.UserEmail = user.Email
	}
}
