// Package view renders the regions of the terminal storefront. Every
// renderer takes a plain state struct and the active styles; none of them
// hold state or touch the storefront model.
package view
