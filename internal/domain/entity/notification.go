package entity

// Notification is the rendered, channel-independent content of one reminder delivery.
type Notification struct {
	Recipient string
	Subject   string
	PlainBody string
	RichBody  string
}
