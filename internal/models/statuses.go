package models

type SellerStatus string
type ApplicationStatus string

const (
	// SellerStatus is a single tri-state enum. Exactly one value holds at
	// a time, so "verified and pending at once" cannot be represented.
	SellerStatusNone     SellerStatus = "none"
	SellerStatusPending  SellerStatus = "pending"
	SellerStatusVerified SellerStatus = "verified"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Valid reports whether s is one of the known seller statuses.
func (s SellerStatus) Valid() bool {
	switch s {
	case SellerStatusNone, SellerStatusPending, SellerStatusVerified:
		return true
	}
	return false
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}
