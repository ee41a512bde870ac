package enums

import "fmt"

// ActivityType labels an entry in the append-only activity log.
type ActivityType string

const (
	ActivityBookAdded     ActivityType = "book_added"
	ActivityBookUpdated   ActivityType = "book_updated"
	ActivityBookDeleted   ActivityType = "book_deleted"
	ActivityOrderReceived ActivityType = "order_received"
	ActivityOrderUpdated  ActivityType = "order_updated"
	ActivityOrderDeleted  ActivityType = "order_deleted"
)

var validActivityTypes = []ActivityType{
	ActivityBookAdded,
	ActivityBookUpdated,
	ActivityBookDeleted,
	ActivityOrderReceived,
	ActivityOrderUpdated,
	ActivityOrderDeleted,
}

// String implements fmt.Stringer.
func (a ActivityType) String() string {
	return string(a)
}

// IsValid reports whether the value is a known ActivityType.
func (a ActivityType) IsValid() bool {
	for _, candidate := range validActivityTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseActivityType converts raw input into an ActivityType.
func ParseActivityType(value string) (ActivityType, error) {
	for _, candidate := range validActivityTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid activity type %q", value)
}
