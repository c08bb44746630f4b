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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateReturn opens a return or replacement request against one product of
// one of the caller's orders. The order must still be inside the 7-day
// window measured from its creation.
func CreateReturn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		OrderID   string `json:"orderId" binding:"required"`
		ProductID string `json:"productId" binding:"required"`
		Type      string `json:"type" binding:"required"`
		Reason    string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidReturnType(input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request type"})
		return
	}

	orderID, err := primitive.ObjectIDFromHex(input.OrderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}
	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var order models.Order
	err = database.Collection(database.ColOrders).
		FindOne(ctx, bson.M{"_id": orderID, "user": userID}).
		Decode(&order)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var product models.Product
	err = database.Collection(database.ColProducts).
		FindOne(ctx, bson.M{"_id": productID}).
		Decode(&product)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if !models.WithinReturnWindow(order.CreatedAt, time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Return period expired"})
		return
	}

	request := models.Return{
		ID:          primitive.NewObjectID(),
		Order:       orderID,
		User:        userID,
		Product:     productID,
		Seller:      product.Seller,
		Reason:      input.Reason,
		Type:        input.Type,
		Status:      models.ReturnPending,
		RequestDate: time.Now(),
	}
	if _, err := database.Collection(database.ColReturns).InsertOne(ctx, request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
		return
	}

	_, err = database.Collection(database.ColOrders).
		UpdateOne(ctx, bson.M{"_id": orderID},
			bson.M{"$set": bson.M{"status": models.PendingOrderStatus(input.Type)}})
	if err != nil {
		log.Println("⚠️ Failed to mark order pending:", err)
	}

	title := fmt.Sprintf("%s Request", utils.Capitalize(input.Type))
	message := fmt.Sprintf("New %s request for %s", input.Type, product.Name)
	utils.CreateNotification(ctx, product.Seller, title, message, models.NotificationReturn)

	var seller models.User
	if err := database.Collection(database.ColUsers).
		FindOne(ctx, bson.M{"_id": product.Seller}).
		Decode(&seller); err == nil {
		var customer models.User
		database.Collection(database.ColUsers).
			FindOne(ctx, bson.M{"_id": userID}).
			Decode(&customer)
		if err := utils.SendReturnRequestEmail(seller.Email, input.Type, product.Name, customer.Name, input.Reason); err != nil {
			log.Println("⚠️ Return request email failed:", err)
		}
	}

	log.Printf("↩️ %s request opened: %s\n", utils.Capitalize(input.Type), request.ID.Hex())
	c.JSON(http.StatusCreated, request)
}

// GetMyReturns lists the caller's requests, newest first.
func GetMyReturns(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	listReturns(c, ctx, bson.M{"user": userID})
}

// GetSellerReturns lists requests against the seller's products.
func GetSellerReturns(c *gin.Context) {
	sellerID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	listReturns(c, ctx, bson.M{"seller": sellerID})
}

func listReturns(c *gin.Context, ctx context.Context, filter bson.M) {
	cursor, err := database.Collection(database.ColReturns).
		Find(ctx, filter, options.Find().SetSort(bson.M{"requestDate": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}
	defer cursor.Close(ctx)

	requests := []models.Return{}
	if err := cursor.All(ctx, &requests); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode requests"})
		return
	}

	for i := range requests {
		enrichReturn(ctx, &requests[i])
	}

	c.JSON(http.StatusOK, requests)
}

// ResolveReturn lets the seller the request was filed against approve,
// reject or complete it. The parent order's status follows the resolution;
// a request whose order has since vanished still resolves.
func ResolveReturn(c *gin.Context) {
	sellerID, ok := currentUserID(c)
	if !ok {
		return
	}
	returnID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id"})
		return
	}

	var input struct {
		Status     string `json:"status" binding:"required"`
		AdminNotes string `json:"adminNotes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	switch input.Status {
	case models.ReturnApproved, models.ReturnRejected, models.ReturnCompleted:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{"status": input.Status, "responseDate": now}
	if input.AdminNotes != "" {
		update["adminNotes"] = input.AdminNotes
	}

	// Scoping the filter by seller means a foreign request and a missing one
	// are indistinguishable to the caller.
	var request models.Return
	err = database.Collection(database.ColReturns).
		FindOneAndUpdate(ctx, bson.M{"_id": returnID, "seller": sellerID},
			bson.M{"$set": update}, findOneAndUpdateReturnAfter()).
		Decode(&request)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Return request not found"})
		return
	}

	if orderStatus := models.ResolvedOrderStatus(request.Type, input.Status); orderStatus != "" {
		_, err = database.Collection(database.ColOrders).
			UpdateOne(ctx, bson.M{"_id": request.Order},
				bson.M{"$set": bson.M{"status": orderStatus}})
		if err != nil {
			log.Println("⚠️ Parent order not updated:", err)
		}
	}

	var product models.Product
	productName := "your product"
	if err := database.Collection(database.ColProducts).
		FindOne(ctx, bson.M{"_id": request.Product}).
		Decode(&product); err == nil {
		productName = product.Name
		request.ProductName = product.Name
	}

	title := fmt.Sprintf("%s %s", utils.Capitalize(request.Type), utils.Capitalize(input.Status))
	message := fmt.Sprintf("Your %s request for %s has been %s", request.Type, productName, input.Status)
	utils.CreateNotification(ctx, request.User, title, message, models.NotificationReturn)

	var customer models.User
	if err := database.Collection(database.ColUsers).
		FindOne(ctx, bson.M{"_id": request.User}).
		Decode(&customer); err == nil {
		if err := utils.SendReturnResolvedEmail(customer.Email, request.Type, productName, input.Status, input.AdminNotes); err != nil {
			log.Println("⚠️ Return resolution email failed:", err)
		}
		request.UserName = customer.Name
		request.UserEmail = customer.Email
	}

	log.Printf("↩️ %s request %s: %s\n", utils.Capitalize(request.Type), request.ID.Hex(), input.Status)
	c.JSON(http.StatusOK, request)
}

// enrichReturn resolves the product and customer references for display.
func enrichReturn(ctx context.Context, request *models.Return) {
	var product models.Product
	if err := database.Collection(database.ColProducts).
		FindOne(ctx, bson.M{"_id": request.Product}).
		Decode(&product); err == nil {
		request.ProductName = product.Name
	}
	var user models.User
	if err := database.Collection(database.ColUsers).
		FindOne(ctx, bson.M{"_id": request.User}).
		Decode(&user); err == nil {
		request.UserName = user.Name
		request.UserEmail = user.Email
	}
}
