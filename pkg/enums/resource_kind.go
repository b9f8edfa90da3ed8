package enums

import "fmt"

// ResourceKind names the admin resources whose list views are cached.
// Cache invalidation is scoped by kind: a confirmed mutation on a kind
// stales every cached view of that kind regardless of filter parameters.
type ResourceKind string

const (
	ResourceProducts      ResourceKind = "products"
	ResourceInventory     ResourceKind = "inventory"
	ResourceOrders        ResourceKind = "orders"
	ResourceUsers         ResourceKind = "users"
	ResourceNotifications ResourceKind = "notifications"
)

var validResourceKinds = []ResourceKind{
	ResourceProducts,
	ResourceInventory,
	ResourceOrders,
	ResourceUsers,
	ResourceNotifications,
}

func (r ResourceKind) IsValid() bool {
	for _, candidate := range validResourceKinds {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseResourceKind converts raw strings into ResourceKind.
func ParseResourceKind(value string) (ResourceKind, error) {
	for _, candidate := range validResourceKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid resource kind %q", value)
}
