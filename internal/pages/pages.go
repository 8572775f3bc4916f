// Package pages holds the static HTML served for the browser routes.
package pages

import _ "embed"

//go:embed login.html
var Login []byte

//go:embed index.html
var Index []byte
