package main

import (
	"reflect"
	"testing"
)

func TestRootCommandDefaultsToPlay(t *testing.T) {
	if rootCmd.Run == nil {
		t.Fatal("bare invocation should start painting, not print help")
	}
	if reflect.ValueOf(rootCmd.Run).Pointer() != reflect.ValueOf(playCmd.Run).Pointer() {
		t.Error("root command should run the same action as the play subcommand")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{"play": false, "serve": false, "sessions": false, "config": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
