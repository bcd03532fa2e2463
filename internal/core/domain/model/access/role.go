package access

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Authorization errors surfaced by permission checks across the application.
var (
	// ErrNotAdmin is returned when an operation reserved for administrators
	// is attempted by a caller without the Admin role.
	ErrNotAdmin = errs.NewValueIsInvalidErrorWithCause("caller", fmt.Errorf("caller does not hold the Admin role"))
	// ErrNotApprovedSubmitter is returned when a caller without a listing
	// capability attempts to list a product.
	ErrNotApprovedSubmitter = errs.NewValueIsInvalidErrorWithCause("caller", fmt.Errorf("caller is not approved to list products"))
	// ErrNotApprovedValidator is returned when order validation is attempted
	// by an identity outside the validator allow-list.
	ErrNotApprovedValidator = errs.NewValueIsInvalidErrorWithCause("caller", fmt.Errorf("caller is not an approved validator"))
)

// Role is a typed capability label assigned to an actor identity.
// It replaces free-text role strings with an enumeration so permission
// checks are performed against constants instead of case-sensitive
// string comparison.
//
// Roles form a single flat capability set: holding Admin grants
// administrative operations, Seller and Submitter grant product listing,
// and the remaining roles exist for provisioning and audit purposes.
type Role int

const (
	// Unknown represents an unset or invalid role. This value (0) is what
	// an identity without any assignment resolves to.
	Unknown Role = iota

	// Admin may assign roles and approve validators.
	Admin

	// Submitter may list products on behalf of sellers.
	Submitter

	// Seller may list products and manage delivery for their orders.
	Seller

	// Buyer places orders. Order creation itself is open to any identity;
	// the label exists for provisioning and audit.
	Buyer

	// Validator is the role label for validating actors. Note that order
	// validation is gated by the admin-approved allow-list, not this label;
	// the two authorization tracks are deliberately independent.
	Validator

	// Courier delivers orders. Delivery updates are gated per order by the
	// assigned courier identity, not by this label.
	Courier
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown:   "Unknown",
		Admin:     "Admin",
		Submitter: "Submitter",
		Seller:    "Seller",
		Buyer:     "Buyer",
		Validator: "Validator",
		Courier:   "Courier",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Role]string{
		Admin:     "Admin",
		Submitter: "Submitter",
		Seller:    "Seller",
		Buyer:     "Buyer",
		Validator: "Validator",
		Courier:   "Courier",
	}
}

// RoleFromString parses a role label into its typed constant.
// Returns an error for unrecognized labels, including "Unknown".
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role value is one of the defined constants.
// Unknown (0) and out-of-range values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// IsAdmin reports whether the role grants administrative operations.
func (r Role) IsAdmin() bool {
	return r == Admin
}

// CanListProducts reports whether the role grants the product listing
// capability. Listing requires an explicit capability rather than being
// open to any caller.
func (r Role) CanListProducts() bool {
	return r == Submitter || r == Seller
}
