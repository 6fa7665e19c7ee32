// Package order contains the Order aggregate root and its supporting value
// objects: the Status state machine, the ServiceTier tariff, and the recipient
// and cargo descriptors. The aggregate owns the full shipment lifecycle from
// creation through courier claiming, transit, and delivery confirmation.
package order
