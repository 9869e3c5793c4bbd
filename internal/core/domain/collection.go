package domain

// Collection kinds. They double as the flat-file basename and the Mongo
// collection name used for seeding and snapshots.
const (
	KindProducts  = "products"
	KindUsers     = "users"
	KindCarts     = "carts"
	KindOrders    = "orders"
	KindCustomers = "customers"
)

// Kinds lists every collection in seeding order.
var Kinds = []string{KindProducts, KindUsers, KindCarts, KindOrders, KindCustomers}
