package evidence

import "fulfillment/internal/core/domain/model/kernel"

// LinkTarget says what a stored file is attached to. Files are uploaded
// unlinked and bound to their owner afterwards, so the variants form a
// closed union: Unlinked, OrderActionLink, PackageLink, SkuLink.
type LinkTarget interface {
	isLinkTarget()
}

// Unlinked marks a file that nothing references yet. Files that stay in
// this state are reclaimed by the cleanup job.
type Unlinked struct{}

func (Unlinked) isLinkTarget() {}

// OrderActionLink binds a file to an audit-trail action.
type OrderActionLink struct {
	ActionID kernel.ID
}

func (OrderActionLink) isLinkTarget() {}

// PackageLink binds a file to a prepare-goods package.
type PackageLink struct {
	PackageID kernel.ID
}

func (PackageLink) isLinkTarget() {}

// SkuLink binds a file to a product SKU.
type SkuLink struct {
	SkuID kernel.ID
}

func (SkuLink) isLinkTarget() {}
