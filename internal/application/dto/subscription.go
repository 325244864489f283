package dto

import "spotwatch/internal/domain/entity"

// SubscriptionKeys mirrors the "keys" object of a browser PushSubscription.
type SubscriptionKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// UpsertSubscriptionRequest is the DTO for storing a push subscription.
// Its shape matches PushSubscription.toJSON() from the browser, plus the
// owning user's ID.
type UpsertSubscriptionRequest struct {
	UserID   string           `json:"user_id"`
	Endpoint string           `json:"endpoint"`
	Keys     SubscriptionKeys `json:"keys"`
}

// ToSubscriptionEntity converts the request into a PushSubscription entity.
func (r UpsertSubscriptionRequest) ToSubscriptionEntity() *entity.PushSubscription {
	return &entity.PushSubscription{
		UserID:   r.UserID,
		Endpoint: r.Endpoint,
		P256dh:   r.Keys.P256dh,
		Auth:     r.Keys.Auth,
	}
}
