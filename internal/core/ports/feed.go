package ports

import "github.com/tdex-network/mvs-vault/internal/core/domain"

// AccountFeed is a push based stream of active account changes. New
// subscribers immediately receive the latest published account, if any.
type AccountFeed interface {
	// Publish notifies all subscribers about the new active account.
	Publish(account domain.Account)
	// Subscribe returns the channel where the active account is delivered and
	// a function to cancel the subscription. The channel is closed once the
	// subscription is cancelled or the feed is closed.
	Subscribe() (<-chan domain.Account, func())
	// Close stops the delivery to all subscribers.
	Close()
}
