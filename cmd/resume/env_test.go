package main

import (
	"os"
	"testing"
	"time"
)

func TestDefaultEnv(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()
	if env.Stdout != os.Stdout {
		t.Error("Stdout should be os.Stdout")
	}
	if env.Stderr != os.Stderr {
		t.Error("Stderr should be os.Stderr")
	}
	if env.Now == nil {
		t.Fatal("Now should not be nil")
	}
	if d := time.Since(env.Now()); d < 0 || d > time.Minute {
		t.Errorf("Now() is %v away from the wall clock", d)
	}
}
