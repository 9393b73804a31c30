package entity

// Audience identifies who a notification is for.
type Audience string

const (
	AudienceCustomer   Audience = "customer"
	AudienceRestaurant Audience = "restaurant"
)

// String returns the string representation of the Audience.
func (a Audience) String() string {
	return string(a)
}

// Channel identifies the delivery channel of a notification.
type Channel string

const (
	ChannelEmail     Channel = "email"
	ChannelSMS       Channel = "sms"
	ChannelPush      Channel = "push"
	ChannelDashboard Channel = "dashboard"
)

// String returns the string representation of the Channel.
func (c Channel) String() string {
	return string(c)
}

// NotificationIntent is a fully-specified, not-yet-delivered notification.
// Intents are constructed and consumed within a single pipeline pass and
// never persisted.
type NotificationIntent struct {
	Audience    Audience `json:"audience"`
	Channel     Channel  `json:"channel"`
	Message     string   `json:"message"`
	DedupeKey   string   `json:"dedupe_key"`
	OrderID     string   `json:"order_id"`
	OrderNumber string   `json:"order_number"`
	Recipient   string   `json:"recipient,omitempty"` // Contact address when the channel needs one.
}
