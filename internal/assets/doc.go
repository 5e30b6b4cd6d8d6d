// Package assets loads the named HTML style templates used to wrap a merged
// book body. Built-in templates are embedded in the binary; a custom
// directory can override them, with fallback to the embedded set.
package assets
