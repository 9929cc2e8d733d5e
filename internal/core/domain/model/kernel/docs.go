// Package kernel contains the shared value objects of the marketplace domain:
// UUID identifiers and Money amounts. Both are immutable, validated at
// construction, and safe for concurrent use.
package kernel
