package cli

import "testing"

func TestShouldAnimateDisabled(t *testing.T) {
	if shouldAnimate(true) {
		t.Error("shouldAnimate(true) should always be false")
	}
}
