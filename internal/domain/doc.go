// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/catalog, domain/party,
// domain/sales, domain/purchasing, domain/identity). This root package holds
// sentinel errors and validation types shared across all entities.
package domain
