package entity

// PushSubscription holds the Web Push endpoint and key material for one user.
// A user has at most one active subscription; re-subscribing replaces it.
type PushSubscription struct {
	UserID   string `gorm:"column:user_id;primaryKey"`
	Endpoint string `gorm:"column:endpoint"`
	P256dh   string `gorm:"column:p256dh"` // Client public key (base64url)
	Auth     string `gorm:"column:auth"`   // Auth secret (base64url)
}

// TableName specifies the table name for the PushSubscription entity.
func (PushSubscription) TableName() string {
	return "push_subscriptions"
}
