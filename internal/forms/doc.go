// Package forms holds the request shapes served by rulekit and the rules
// that check them.
package forms
