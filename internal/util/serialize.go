package util

import "github.com/kr/pretty"

// Pretty renders v for debug logs.
func Pretty(v interface{}) string {
	return pretty.Sprint(v)
}

