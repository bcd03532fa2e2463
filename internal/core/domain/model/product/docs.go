// Package product provides the Product aggregate: an immutable marketplace
// listing with a sequential identifier, a positive price, and a seller
// snapshot taken at listing time.
//
// Products never change after creation. The catalog only grows, and the
// seller identity recorded here is what orders copy when they are created.
package product
