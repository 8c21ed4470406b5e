package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectTaskLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"tasks"},
			want: []string{"tasks"},
		},
		{
			name: "task id first token",
			in:   []string{"tasks", "42"},
			want: []string{"tasks", "show", "42"},
		},
		{
			name: "hash prefixed id",
			in:   []string{"tasks", "#42"},
			want: []string{"tasks", "show", "#42"},
		},
		{
			name: "task id after value flag",
			in:   []string{"tasks", "--dir", "./tmp", "42"},
			want: []string{"tasks", "--dir", "./tmp", "show", "42"},
		},
		{
			name: "task id after equals flag",
			in:   []string{"tasks", "--format=edn", "42"},
			want: []string{"tasks", "--format=edn", "show", "42"},
		},
		{
			name: "task id after bool flag",
			in:   []string{"tasks", "--pretty", "42"},
			want: []string{"tasks", "--pretty", "show", "42"},
		},
		{
			name: "task id after double dash",
			in:   []string{"tasks", "--", "42"},
			want: []string{"tasks", "--", "show", "42"},
		},
		{
			name: "subcommand not rewritten",
			in:   []string{"tasks", "done", "42"},
			want: []string{"tasks", "done", "42"},
		},
		{
			name: "numeric flag value not rewritten",
			in:   []string{"tasks", "--dir", "42"},
			want: []string{"tasks", "--dir", "42"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectTaskLookupArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectTaskLookupArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
