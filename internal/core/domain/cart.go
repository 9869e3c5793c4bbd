package domain

// CartItem is one line of a user's cart. IDs are opaque strings.
type CartItem struct {
	ID          string  `json:"id" bson:"id"`
	IDUser      string  `json:"idUser" bson:"idUser"`
	URLImg      string  `json:"urlImg" bson:"urlImg"`
	ProductName string  `json:"productName" bson:"productName"`
	Size        string  `json:"size" bson:"size"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Price       float64 `json:"price" bson:"price"`
}

// Order is a cart item that went through checkout, stamped with shipping info.
type Order struct {
	ID          string  `json:"id" bson:"id"`
	IDUser      string  `json:"idUser" bson:"idUser"`
	URLImg      string  `json:"urlImg" bson:"urlImg"`
	ProductName string  `json:"productName" bson:"productName"`
	Size        string  `json:"size" bson:"size"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Price       float64 `json:"price" bson:"price"`
	Name        string  `json:"name" bson:"name"`
	Address     string  `json:"address" bson:"address"`
	PhoneNumber string  `json:"phoneNumber" bson:"phoneNumber"`
}

// ShippingInfo is submitted at checkout and copied onto every resulting order.
type ShippingInfo struct {
	Name        string
	Address     string
	City        string
	PhoneNumber string
}

// NewOrder converts a cart item into an order. The ID is left for the store
// to assign.
func NewOrder(item CartItem, ship ShippingInfo) Order {
	return Order{
		IDUser:      item.IDUser,
		URLImg:      item.URLImg,
		ProductName: item.ProductName,
		Size:        item.Size,
		Quantity:    item.Quantity,
		Price:       item.Price,
		Name:        ship.Name,
		Address:     ship.Address + ", " + ship.City,
		PhoneNumber: ship.PhoneNumber,
	}
}
