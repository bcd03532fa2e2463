// Package order provides the Order aggregate and its lifecycle state machine,
// the core of the marketplace ledger.
//
// The package includes:
//   - Order: the aggregate root tracking one buyer's purchase of a product
//     through validation, delivery, and finalization
//   - Status: a state machine enforcing the legal lifecycle transitions
//
// Key business rules:
//   - Orders reference an existing product and snapshot its seller at
//     creation time
//   - Validation decides a Pending order exactly once (approve or reject)
//   - Delivery is assigned by the seller and reported by the assigned courier
//   - Finalization requires both parties: the seller completes the order,
//     then the buyer confirms, making the order irrevocably Finalized
//   - Finalized and Rejected orders accept no further mutation
//
// Identity gating for buyer, seller, and courier is enforced inside the
// aggregate; registry-backed gates (validator allow-list, role labels) are
// checked by the application layer.
package order
