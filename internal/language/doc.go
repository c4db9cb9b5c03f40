// Package language provides unified language code normalization and mapping.
//
// Caption catalogs key tracks by short codes ("en", "en-US") while users type
// anything from "english" to "eng"; conversions and display names are
// consolidated here.
package language
