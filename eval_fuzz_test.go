//go:build go1.18
// +build go1.18

package rpn_test

import (
	"testing"

	rpn "github.com/ha-shine/infix-calculator"
)

func FuzzEvalString(f *testing.F) {
	f.Add("1 + 3 - (4 / 5)")
	f.Add("10 - 2 - 3")
	f.Add(")))1 1 +")
	f.Fuzz(func(t *testing.T, s string) {
		rpn.EvalString(s)
	})
}
