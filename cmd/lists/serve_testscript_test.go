package main

import (
	"testing"

	"github.com/amonks/lists/internal/testsupport"
	"github.com/rogpeppe/go-internal/testscript"
)

func TestServeScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/serve",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
	})
}
