// Package kernel contains the shared value objects of the Mainbridge domain:
// identifiers, monetary amounts, and postal addresses. All types in this
// package are immutable, validated at construction, and safe for concurrent use.
package kernel
