// Package domain contains the error taxonomy shared by the academic catalog.
// Entity-specific types live in sub-packages (domain/faculty, domain/program),
// value objects in domain/academic, and the cross-aggregate rules in
// domain/catalog. This root package holds sentinel errors and the typed
// errors that unwrap to them.
package domain
