package errors

import "errors"

// Custom application errors
var (
	ErrSpotNotFound         = errors.New("spot not found")              // Spot (booking) not found
	ErrSubscriptionNotFound = errors.New("push subscription not found") // No stored subscription for the user
	ErrInvalidUserID        = errors.New("invalid user id")             // User ID is not a valid UUID
	ErrInvalidDate          = errors.New("invalid date format")         // Date from client could not be parsed
	ErrInvalidSubscription  = errors.New("invalid push subscription")   // Subscription payload missing endpoint or keys
	ErrDatabaseOperation    = errors.New("database operation failed")   // Generic database error
	ErrPushDelivery         = errors.New("web push delivery failed")    // Generic Web Push transport error
	ErrScheduling           = errors.New("scheduling failed")           // Generic cron scheduling error
	ErrInternalServer       = errors.New("internal server error")       // Generic internal error
)
