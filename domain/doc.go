// Package domain defines the wire-format entities shared by the trainer and
// client applications, together with the derived business rules layered on
// top of them (display names, tier billing, program date windows, media URL
// resolution).
//
// Every entity is an immutable value record decoded from backend JSON.
// Optional wire fields are pointers with omitempty; cross-references between
// entities are string identifiers only, resolved by the consuming
// application. Enumerations driven by remote data decode unrecognized tokens
// to an explicit unknown variant instead of failing, so server-side additions
// never break older app builds.
package domain
