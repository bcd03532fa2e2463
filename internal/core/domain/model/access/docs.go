// Package access provides the authorization domain model for the marketplace.
// It covers the two independent authorization tracks every mutation is gated by:
//
//   - RoleAssignment: a typed role label per actor identity, granted by an
//     administrator. The Admin role is the super-capability that may assign
//     roles and approve validators.
//   - ValidatorApproval: an admin-maintained allow-list of identities that may
//     validate orders, separate from the Validator role label.
//
// The two tracks are never cross-checked: holding the Validator role does not
// admit an identity to the allow-list, and an approved validator need not hold
// any role label. Both registries are append-only; neither roles nor approvals
// can be removed once granted.
package access
